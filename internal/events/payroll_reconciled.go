package events

import "time"

const PayrollReconciledTopic = "finance.payroll.reconciled.v1"

type PayrollReconciledEvent struct {
	EventType           string    `json:"event_type"`
	EmployeeID          string    `json:"employee_id"`
	OutstandingAdvances float64   `json:"outstanding_advances"`
	UpdatedPayrolls     int       `json:"updated_payrolls"`
	OccurredAt          time.Time `json:"occurred_at"`
}
