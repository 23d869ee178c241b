package trips

import "strings"

// PaymentType is the closed set of payment types the dashboard knows how to
// color. Values outside the set parse to PaymentOther and keep their raw
// label on the trip.
type PaymentType int

const (
	PaymentOther PaymentType = iota
	PaymentCash
	PaymentCreditCard
	PaymentMobile
	PaymentPrcard
	PaymentUnknown
	PaymentNoCharge
	PaymentDispute

	numPaymentTypes
)

// NumPaymentTypes is the number of PaymentType values, PaymentOther included.
const NumPaymentTypes = int(numPaymentTypes)

var paymentLabels = [numPaymentTypes]string{
	PaymentOther:      "Other",
	PaymentCash:       "Cash",
	PaymentCreditCard: "Credit Card",
	PaymentMobile:     "Mobile",
	PaymentPrcard:     "Prcard",
	PaymentUnknown:    "Unknown",
	PaymentNoCharge:   "No Charge",
	PaymentDispute:    "Dispute",
}

// ParsePaymentType maps a raw payment label to its PaymentType.
func ParsePaymentType(label string) PaymentType {
	label = strings.TrimSpace(label)
	for p := PaymentCash; p < numPaymentTypes; p++ {
		if strings.EqualFold(paymentLabels[p], label) {
			return p
		}
	}
	return PaymentOther
}

func (p PaymentType) String() string {
	if p < 0 || p >= numPaymentTypes {
		return paymentLabels[PaymentOther]
	}
	return paymentLabels[p]
}

// PaymentTypes lists the known payment types in display order.
func PaymentTypes() []PaymentType {
	out := make([]PaymentType, 0, NumPaymentTypes-1)
	for p := PaymentCash; p < numPaymentTypes; p++ {
		out = append(out, p)
	}
	return out
}
