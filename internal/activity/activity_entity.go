package activity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only record of entity mutations, written by the
// Kafka consumer from activity events.
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntityTable string  `gorm:"column:table_name;type:varchar(60);not null;index"`
	Action    string    `gorm:"type:varchar(20);not null"`
	RowID     string    `gorm:"type:varchar(60);not null;index"`
	Details   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
