package project

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "Active"
	StatusOnHold    = "On Hold"
	StatusCompleted = "Completed"
)

// RoleRates maps a free-text trade label to its hourly rate. Labels are not
// required to match any employee's role.
type RoleRates map[string]float64

func (r RoleRates) Value() (driver.Value, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r)
}

func (r *RoleRates) Scan(value any) error {
	if value == nil {
		*r = RoleRates{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported role_rates type %T", value)
	}

	return json.Unmarshal(raw, r)
}

type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(160);not null;uniqueIndex"`
	Budget    float64   `gorm:"not null;default:0"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Active';index"`
	RoleRates RoleRates `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
