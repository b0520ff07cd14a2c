package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	Update(ctx context.Context, p *Payroll) error
	UpdateNetPay(ctx context.Context, id string, netPay float64) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	ProjectExists(ctx context.Context, projectID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	q := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Preload("Employee")

	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ProjectID != "" {
		q = q.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Month != "" {
		if month, err := ParseMonth(filter.Month); err == nil {
			q = q.Where("month = ?", month)
		}
	}

	var payrolls []Payroll
	err := q.Order("month DESC, created_at DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("month ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) UpdateNetPay(ctx context.Context, id string, netPay float64) error {
	return r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"net_pay":    netPay,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Payroll{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("projects").
		Where("id = ?", projectID).
		Count(&count).Error
	return count > 0, err
}
