package advance

import "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile"

// A zero-amount advance is a legal row: the office records placeholder
// advances and fills the figure in later. Only negatives are rejected,
// and "required" would trip on the float zero value, so it stays off.
type CreateAdvanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Note       string  `json:"note"`
	Date       string  `json:"date" binding:"required"`
	AutoDeduct *bool   `json:"auto_deduct"`
}

type UpdateAdvanceRequest struct {
	Amount     float64 `json:"amount" binding:"gte=0"`
	Note       string  `json:"note"`
	Date       string  `json:"date" binding:"required"`
	AutoDeduct bool    `json:"auto_deduct"`
	Paid       bool    `json:"paid"`
}

type AdvanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Amount       float64 `json:"amount"`
	Note         string  `json:"note,omitempty"`
	Date         string  `json:"date"`
	AutoDeduct   bool    `json:"auto_deduct"`
	Paid         bool    `json:"paid"`

	Reconciliation *reconcile.Result `json:"reconciliation,omitempty"`
}

type DeleteAdvanceResponse struct {
	Deleted        bool              `json:"deleted"`
	Reconciliation *reconcile.Result `json:"reconciliation,omitempty"`
}
