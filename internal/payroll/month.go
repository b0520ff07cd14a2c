package payroll

import "time"

// ParseMonth accepts "2006-01" or "2006-01-02" and normalizes the value to
// the first day of that month in UTC.
func ParseMonth(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}
