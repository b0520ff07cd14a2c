package expense

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Expense) error
	FindAll(ctx context.Context, projectID string) ([]Expense, error)
	FindByID(ctx context.Context, id string) (*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, projectID string) ([]Expense, error) {
	q := r.db.WithContext(ctx).
		Model(&Expense{}).
		Preload("Project")

	if projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var expenses []Expense
	err := q.Order("date DESC, created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	err := r.db.WithContext(ctx).
		Preload("Project").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Expense{}, "id = ?", id).Error
}

func (r *repository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("projects").
		Where("id = ?", projectID).
		Count(&count).Error
	return count > 0, err
}
