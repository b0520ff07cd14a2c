package expense

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Project   *ExpenseProject `gorm:"foreignKey:ProjectID;references:ID"`

	Category      string    `gorm:"type:varchar(100)"`
	Description   string    `gorm:"type:text"`
	Amount        float64   `gorm:"not null"`
	Date          time.Time `gorm:"type:date;not null;index"`
	PaymentMethod string    `gorm:"type:varchar(20);not null;default:'Cash'"`
	PaidBy        string    `gorm:"type:varchar(160)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Expense) TableName() string {
	return "expenses"
}

type ExpenseProject struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (ExpenseProject) TableName() string {
	return "projects"
}
