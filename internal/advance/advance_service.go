package advance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	advanceerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/advance/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile"
	reconcileerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=advance_service.go -destination=mock/advance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
	GetByID(ctx context.Context, id string) (AdvanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAdvanceRequest) (AdvanceResponse, error)
	Delete(ctx context.Context, id string) (DeleteAdvanceResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	reconciler reconcile.Service
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	reconciler reconcile.Service,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		reconciler: reconciler,
		outbox:     outboxRepo,
		logger:     zap.L().Named("advance.service"),
	}
}

// Create persists the advance and commits before reconciliation runs. The
// ledger write must never be lost because a recalculation failed; a failed
// reconciliation surfaces as ErrReconcilePending alongside the saved row.
func (s *service) Create(
	ctx context.Context,
	req CreateAdvanceRequest,
) (AdvanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AdvanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AdvanceResponse{}, err
	}
	if !exists {
		return AdvanceResponse{}, advanceerrors.ErrEmployeeNotFound
	}

	autoDeduct := true
	if req.AutoDeduct != nil {
		autoDeduct = *req.AutoDeduct
	}

	a := &Advance{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Amount:     req.Amount,
		Note:       req.Note,
		Date:       date,
		AutoDeduct: autoDeduct,
		Paid:       false,
	}

	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create advance persist failed", zap.Error(err))
		return AdvanceResponse{}, mapRepositoryError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, rid, "advance_created", a); err != nil {
		return AdvanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AdvanceResponse{}, err
	}

	return s.reconcileAfterCommit(ctx, mapToResponse(*a))
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]AdvanceResponse, error) {
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, advanceerrors.ErrEmployeeNotFound
		}
	}

	advances, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AdvanceResponse, len(advances))
	for i, a := range advances {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AdvanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AdvanceResponse{}, advanceerrors.ErrAdvanceNotFound
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AdvanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateAdvanceRequest,
) (AdvanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AdvanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AdvanceResponse{}, mapRepositoryError(err)
	}

	a.Amount = req.Amount
	a.Note = req.Note
	a.Date = date
	a.AutoDeduct = req.AutoDeduct
	a.Paid = req.Paid

	if err := qtx.Update(ctx, a); err != nil {
		return AdvanceResponse{}, mapRepositoryError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, rid, "advance_updated", a); err != nil {
		return AdvanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AdvanceResponse{}, err
	}

	return s.reconcileAfterCommit(ctx, mapToResponse(*a))
}

func (s *service) Delete(ctx context.Context, id string) (DeleteAdvanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeleteAdvanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DeleteAdvanceResponse{}, mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return DeleteAdvanceResponse{}, mapRepositoryError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, rid, "advance_deleted", a); err != nil {
		return DeleteAdvanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeleteAdvanceResponse{}, err
	}

	resp := DeleteAdvanceResponse{Deleted: true}
	result, err := s.reconciler.ReconcileEmployee(ctx, a.EmployeeID.String())
	if err != nil {
		if errors.Is(err, reconcileerrors.ErrReconcilePending) {
			resp.Reconciliation = &result
			return resp, err
		}
		return resp, err
	}

	resp.Reconciliation = &result
	return resp, nil
}

// reconcileAfterCommit runs reconciliation for the advance's employee once
// the ledger write is durable. ErrReconcilePending is passed through so the
// handler can report the saved row with a warning.
func (s *service) reconcileAfterCommit(
	ctx context.Context,
	resp AdvanceResponse,
) (AdvanceResponse, error) {
	result, err := s.reconciler.ReconcileEmployee(ctx, resp.EmployeeID)
	if err != nil {
		if errors.Is(err, reconcileerrors.ErrReconcilePending) {
			resp.Reconciliation = &result
			return resp, err
		}
		return resp, err
	}

	resp.Reconciliation = &result
	return resp, nil
}

func (s *service) writeLifecycleEvent(
	ctx context.Context,
	tx *sql.Tx,
	requestID, eventType string,
	a *Advance,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AdvanceLifecycleEvent{
		EventType:  eventType,
		AdvanceID:  a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Amount:     a.Amount,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "advances",
		AggregateID:   a.ID.String(),
		EventType:     eventType,
		Topic:         events.AdvanceLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(a Advance) AdvanceResponse {
	resp := AdvanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Amount:     a.Amount,
		Note:       a.Note,
		Date:       a.Date.Format("2006-01-02"),
		AutoDeduct: a.AutoDeduct,
		Paid:       a.Paid,
	}

	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}

	return resp
}
