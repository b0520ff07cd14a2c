package events

import "time"

const AdvanceLifecycleTopic = "finance.advance.lifecycle.v1"

type AdvanceLifecycleEvent struct {
	EventType  string    `json:"event_type"` // advance_created | advance_updated | advance_deleted
	AdvanceID  string    `json:"advance_id"`
	EmployeeID string    `json:"employee_id"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
