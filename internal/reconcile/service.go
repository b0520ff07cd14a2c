package reconcile

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/payroll"
	reconcileerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger is the advance side of reconciliation. Satisfied by the advance
// repository.
type Ledger interface {
	OutstandingTotal(ctx context.Context, employeeID string) (float64, error)
}

// Result describes one completed reconciliation run for an employee.
type Result struct {
	EmployeeID          string  `json:"employee_id"`
	OutstandingAdvances float64 `json:"outstanding_advances"`
	UpdatedPayrolls     int     `json:"updated_payrolls"`
}

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type Service interface {
	// ReconcileEmployee recomputes net pay for every payroll record of the
	// employee against the current outstanding advance total. On failure a
	// retry task is queued and ErrReconcilePending is returned.
	ReconcileEmployee(ctx context.Context, employeeID string) (Result, error)

	// RetryPending drains due reconcile tasks; returns how many succeeded.
	RetryPending(ctx context.Context, batchSize int) (int, error)
}

type service struct {
	db       *sql.DB
	payrolls payroll.Repository
	ledger   Ledger
	tasks    TaskRepository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	payrollRepo payroll.Repository,
	ledger Ledger,
	taskRepo TaskRepository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:       db,
		payrolls: payrollRepo,
		ledger:   ledger,
		tasks:    taskRepo,
		outbox:   outboxRepo,
		logger:   zap.L().Named("reconcile.service"),
	}
}

func (s *service) ReconcileEmployee(ctx context.Context, employeeID string) (Result, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return Result{}, reconcileerrors.ErrEmployeeNotFound
	}

	result, err := s.reconcile(ctx, employeeID)
	if err == nil {
		return result, nil
	}

	s.logger.Warn("reconciliation failed, queueing retry",
		zap.String("employee_id", employeeID),
		zap.Error(err),
	)

	if s.tasks != nil {
		if enqueueErr := s.tasks.Enqueue(ctx, employeeID); enqueueErr != nil {
			s.logger.Error("reconcile retry enqueue failed",
				zap.String("employee_id", employeeID),
				zap.Error(enqueueErr),
			)
			return Result{}, err
		}
	}

	return Result{EmployeeID: employeeID}, reconcileerrors.ErrReconcilePending.Wrap(err)
}

func (s *service) RetryPending(ctx context.Context, batchSize int) (int, error) {
	if s.tasks == nil {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 50
	}

	tasks, err := s.tasks.ListDue(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	succeeded := 0
	for _, task := range tasks {
		if _, err := s.reconcile(ctx, task.EmployeeID.String()); err != nil {
			s.logger.Warn("reconcile retry failed",
				zap.String("task_id", task.ID.String()),
				zap.String("employee_id", task.EmployeeID.String()),
				zap.Int("attempt", task.Attempts+1),
				zap.Error(err),
			)
			if markErr := s.tasks.MarkFailed(ctx, task.ID.String(), task.Attempts+1, err.Error()); markErr != nil {
				s.logger.Error("mark reconcile task failed", zap.Error(markErr))
			}
			continue
		}

		if err := s.tasks.MarkDone(ctx, task.ID.String()); err != nil {
			s.logger.Error("mark reconcile task done", zap.Error(err))
			continue
		}
		succeeded++
	}

	return succeeded, nil
}

// reconcile applies the current outstanding total to every payroll record of
// the employee in one transaction. All records share the same deduction so a
// ledger change is reflected consistently across months.
func (s *service) reconcile(ctx context.Context, employeeID string) (Result, error) {
	outstanding, err := s.ledger.OutstandingTotal(ctx, employeeID)
	if err != nil {
		return Result{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	defer tx.Rollback()

	qtx := s.payrolls.WithTx(tx)

	records, err := qtx.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return Result{}, err
	}

	updated := 0
	for _, rec := range records {
		net := payroll.NetPay(rec.GrossPay, outstanding)
		if net == rec.NetPay {
			continue
		}
		if err := qtx.UpdateNetPay(ctx, rec.ID.String(), net); err != nil {
			return Result{}, err
		}
		updated++
	}

	result := Result{
		EmployeeID:          employeeID,
		OutstandingAdvances: outstanding,
		UpdatedPayrolls:     updated,
	}

	if err := s.writeReconciledEvent(ctx, tx, result); err != nil {
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		return Result{}, err
	}

	s.logger.Info("employee reconciled",
		zap.String("employee_id", employeeID),
		zap.Float64("outstanding_advances", outstanding),
		zap.Int("updated_payrolls", updated),
	)

	return result, nil
}

func (s *service) writeReconciledEvent(ctx context.Context, tx *sql.Tx, result Result) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollReconciledEvent{
		EventType:           "payroll.reconciled",
		EmployeeID:          result.EmployeeID,
		OutstandingAdvances: result.OutstandingAdvances,
		UpdatedPayrolls:     result.UpdatedPayrolls,
		OccurredAt:          time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll",
		AggregateID:   result.EmployeeID,
		EventType:     "payroll.reconciled",
		Topic:         events.PayrollReconciledTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
