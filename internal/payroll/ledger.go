package payroll

import "context"

// AdvanceLedger exposes the one advance figure payroll needs: the sum of an
// employee's advances not yet settled against pay.
type AdvanceLedger interface {
	OutstandingTotal(ctx context.Context, employeeID string) (float64, error)
}
