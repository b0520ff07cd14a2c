package advance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=advance_repo.go -destination=mock/advance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Advance) error
	FindAll(ctx context.Context, employeeID string) ([]Advance, error)
	FindByID(ctx context.Context, id string) (*Advance, error)
	Update(ctx context.Context, a *Advance) error
	Delete(ctx context.Context, id string) error
	OutstandingTotal(ctx context.Context, employeeID string) (float64, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, a *Advance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string) ([]Advance, error) {
	q := r.db.WithContext(ctx).
		Model(&Advance{}).
		Preload("Employee")

	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var advances []Advance
	err := q.Order("date DESC, created_at DESC").Find(&advances).Error
	return advances, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Advance, error) {
	var a Advance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Advance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Advance{}, "id = ?", id).Error
}

// OutstandingTotal sums every advance recorded against the employee. The
// paid and auto_deduct flags are bookkeeping for the office, not ledger
// filters: a settled advance still counts until the row is deleted.
// COALESCE keeps the zero-row case at 0 instead of NULL.
func (r *repository) OutstandingTotal(ctx context.Context, employeeID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Advance{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("employee_id = ?", employeeID).
		Scan(&total).Error
	return total, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
