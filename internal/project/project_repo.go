package project

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, proj *Project) error
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	FindByName(ctx context.Context, name string) (*Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Create(proj).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var proj Project
	err := r.db.WithContext(ctx).
		First(&proj, "id = ?", id).Error
	return &proj, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Project, error) {
	var proj Project
	err := r.db.WithContext(ctx).
		First(&proj, "name = ?", name).Error
	return &proj, err
}

func (r *repository) Update(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Save(proj).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Project{}, "id = ?", id).Error
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
