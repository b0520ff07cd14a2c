package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
	TaskStatusFailed  = "failed"

	maxTaskAttempts = 10
)

// ReconcileTask marks an employee whose payroll records are stale relative
// to the advance ledger. The worker drains these until they succeed.
type ReconcileTask struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts   int       `gorm:"not null;default:0"`
	LastError  string    `gorm:"type:text"`
	NextRunAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ReconcileTask) TableName() string {
	return "reconcile_tasks"
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type TaskRepository interface {
	Enqueue(ctx context.Context, employeeID string) error
	ListDue(ctx context.Context, limit int) ([]ReconcileTask, error)
	MarkDone(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, attempt int, cause string) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Enqueue(ctx context.Context, employeeID string) error {
	task := ReconcileTask{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		Status:     TaskStatusPending,
		NextRunAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&task).Error
}

func (r *taskRepository) ListDue(ctx context.Context, limit int) ([]ReconcileTask, error) {
	var tasks []ReconcileTask
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_run_at <= ?", TaskStatusPending, time.Now().UTC()).
		Order("next_run_at ASC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) MarkDone(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&ReconcileTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     TaskStatusDone,
			"updated_at": time.Now().UTC(),
		}).Error
}

// MarkFailed reschedules with exponential backoff until the attempt budget
// runs out, then parks the task as failed for manual inspection.
func (r *taskRepository) MarkFailed(ctx context.Context, id string, attempt int, cause string) error {
	status := TaskStatusPending
	if attempt >= maxTaskAttempts {
		status = TaskStatusFailed
	}

	backoff := time.Duration(attempt) * 30 * time.Second
	if backoff > 15*time.Minute {
		backoff = 15 * time.Minute
	}

	return r.db.WithContext(ctx).
		Model(&ReconcileTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"attempts":    attempt,
			"last_error":  cause,
			"next_run_at": time.Now().UTC().Add(backoff),
			"updated_at":  time.Now().UTC(),
		}).Error
}
