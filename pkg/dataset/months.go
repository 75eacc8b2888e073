package dataset

import (
	"fmt"
	"time"
)

// MonthLayout is the label format used for every record's month field.
const MonthLayout = "2006-01"

// DefaultMonths is how many months a run covers unless configured otherwise.
const DefaultMonths = 12

// LastMonths returns n consecutive "YYYY-MM" labels ending at the month of now
// (UTC), oldest first.
func LastMonths(now time.Time, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonthCount, n)
	}

	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := make([]string, n)
	for i := 0; i < n; i++ {
		// time.Date normalizes month underflow into previous years
		out[n-1-i] = first.AddDate(0, -i, 0).Format(MonthLayout)
	}
	return out, nil
}

// ParseMonth parses a "YYYY-MM" label into the first instant of that month in UTC.
func ParseMonth(label string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, label)
	}
	return t, nil
}
