package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(160);not null"`
	EmployeeCode string     `gorm:"type:varchar(40);not null;uniqueIndex:uq_employee_code"`
	IqamaNumber  string     `gorm:"type:varchar(40);uniqueIndex:uq_employee_iqama"`
	Role         string     `gorm:"type:varchar(80)"`
	Nationality  string     `gorm:"type:varchar(80)"`
	Phone        string     `gorm:"type:varchar(40)"`
	DateOfJoin   time.Time  `gorm:"type:date"`
	ProjectID    *uuid.UUID `gorm:"type:uuid;index"`
	Active       bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
