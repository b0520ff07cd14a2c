package activity

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *ActivityLog) error
	FindRecent(ctx context.Context, limit int) ([]ActivityLog, error)
	FindByTable(ctx context.Context, tableName string, limit int) ([]ActivityLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]ActivityLog, error) {
	var entries []ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByTable(ctx context.Context, tableName string, limit int) ([]ActivityLog, error) {
	var entries []ActivityLog
	err := r.db.WithContext(ctx).
		Where("table_name = ?", tableName).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
