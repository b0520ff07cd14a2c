package advance

import (
	"time"

	"github.com/google/uuid"
)

type Advance struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Employee   *AdvanceEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	Amount float64   `gorm:"not null"`
	Note   string    `gorm:"type:text"`
	Date   time.Time `gorm:"type:date;not null"`

	// AutoDeduct marks the advance for settlement against net pay; Paid
	// flips once it has been settled and removes it from the outstanding
	// total.
	AutoDeduct bool `gorm:"not null;default:true"`
	Paid       bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Advance) TableName() string {
	return "advances"
}

type AdvanceEmployee struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (AdvanceEmployee) TableName() string {
	return "employees"
}
