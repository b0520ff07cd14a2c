package payroll

import "math"

// sanitize collapses NaN, infinities and negative values to zero so a bad
// import row can never poison a stored pay figure.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// GrossPay is hours worked times hourly rate. Pure; inputs are sanitized,
// so the result is never negative.
func GrossPay(hoursWorked, rate float64) float64 {
	return sanitize(hoursWorked) * sanitize(rate)
}

// NetPay is gross pay minus the employee's outstanding advance total. The
// result may be negative when advances exceed gross pay; that is a business
// decision, not an omission, and must not be clamped.
func NetPay(gross, advanceTotal float64) float64 {
	return sanitize(gross) - sanitize(advanceTotal)
}
