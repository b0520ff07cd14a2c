package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"
)

type Payroll struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;index:idx_payroll_employee_month"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	ProjectID  *uuid.UUID       `gorm:"type:uuid;index"`

	// First-of-month date identifying the pay period.
	Month time.Time `gorm:"type:date;not null;index:idx_payroll_employee_month"`

	HoursWorked float64 `gorm:"not null;default:0"`
	Rate        float64 `gorm:"not null;default:0"`
	GrossPay    float64 `gorm:"not null;default:0"`
	NetPay      float64 `gorm:"not null;default:0"`

	Status    string `gorm:"type:varchar(20);not null;default:'Unpaid';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayrollEmployee struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}
