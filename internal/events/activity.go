package events

import (
	"encoding/json"
	"time"
)

const ActivityTopic = "finance.activity.v1"

// ActivityEvent mirrors the activity_log table: one row per entity mutation.
type ActivityEvent struct {
	EventType  string          `json:"event_type"`
	TableName  string          `json:"table_name"`
	Action     string          `json:"action"` // created | updated | deleted
	RowID      string          `json:"row_id"`
	Details    json.RawMessage `json:"details,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
