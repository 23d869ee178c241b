// Package palette assigns display colors to categorical values.
package palette

import (
	"fmt"
	"time"

	"taxidash.io/internal/trips"
)

// Color is an sRGB color.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an [r, g, b] triplet.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Fallback is used for any category outside the known vocabularies.
var Fallback = Color{0x80, 0x80, 0x80}

// rainbow is the seven-color scale shared by the categorical palettes.
var rainbow = [7]Color{
	{0xe8, 0x14, 0x16},
	{0xff, 0xa5, 0x00},
	{0xfa, 0xeb, 0x36},
	{0x79, 0xc3, 0x14},
	{0x48, 0x7d, 0xe7},
	{0x4b, 0x36, 0x9d},
	{0x70, 0x36, 0x9d},
}

var paymentColors = [...]Color{
	trips.PaymentOther:      Fallback,
	trips.PaymentCash:       rainbow[0],
	trips.PaymentCreditCard: rainbow[1],
	trips.PaymentMobile:     rainbow[2],
	trips.PaymentPrcard:     rainbow[3],
	trips.PaymentUnknown:    rainbow[4],
	trips.PaymentNoCharge:   rainbow[5],
	trips.PaymentDispute:    rainbow[6],
}

// Fails to compile if a payment type is added without a color.
var _ = [1]struct{}{}[len(paymentColors)-trips.NumPaymentTypes]

var weekdayColors = [...]Color{
	time.Monday:    rainbow[0],
	time.Tuesday:   rainbow[1],
	time.Wednesday: rainbow[2],
	time.Thursday:  rainbow[3],
	time.Friday:    rainbow[4],
	time.Saturday:  rainbow[5],
	time.Sunday:    rainbow[6],
}

var _ = [1]struct{}{}[len(weekdayColors)-7]

// PaymentColor returns the color of a payment type.
func PaymentColor(p trips.PaymentType) Color {
	if int(p) < 0 || int(p) >= len(paymentColors) {
		return Fallback
	}
	return paymentColors[p]
}

// ForPaymentLabel returns the color for a raw payment label. Unknown labels
// get Fallback.
func ForPaymentLabel(label string) Color {
	return PaymentColor(trips.ParsePaymentType(label))
}

// WeekdayColor returns the color of a day of the week.
func WeekdayColor(d time.Weekday) Color {
	if int(d) < 0 || int(d) >= len(weekdayColors) {
		return Fallback
	}
	return weekdayColors[d]
}

// ForWeekdayName returns the color for a weekday name such as "Monday".
// Unknown names get Fallback.
func ForWeekdayName(name string) Color {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return weekdayColors[d]
		}
	}
	return Fallback
}

// Series returns the i-th color of the ranking palette, cycling through it.
func Series(i int) Color {
	if i < 0 {
		return Fallback
	}
	return rainbow[i%len(rainbow)]
}
