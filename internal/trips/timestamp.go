package trips

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout of the "Trip Start Timestamp" column.
const TimestampLayout = "01/02/2006 03:04:05 PM"

// ParseError reports a trip start timestamp that does not match TimestampLayout.
type ParseError struct {
	Row   int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: invalid trip start timestamp %q", e.Row, e.Value)
	}
	return fmt.Sprintf("invalid trip start timestamp %q", e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseStartTimestamp parses a trip start timestamp. Timestamps carry no zone
// and are interpreted as UTC.
func ParseStartTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Err: err}
	}
	return t, nil
}

// WeekdayOf derives the day-of-week name from a raw trip start timestamp.
func WeekdayOf(value string) (string, error) {
	t, err := ParseStartTimestamp(value)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
