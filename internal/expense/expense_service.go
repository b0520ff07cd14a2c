package expense

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	expenseerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/expense/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, projectID string) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	Update(ctx context.Context, id string, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: zap.L().Named("expense.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateExpenseRequest,
) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ProjectExists(ctx, req.ProjectID)
	if err != nil {
		return ExpenseResponse{}, err
	}
	if !exists {
		return ExpenseResponse{}, expenseerrors.ErrProjectNotFound
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = "Cash"
	}

	e := &Expense{
		ID:            uuid.New(),
		ProjectID:     uuid.MustParse(req.ProjectID),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		PaidBy:        req.PaidBy,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "created", e.ID.String()); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, projectID string) ([]ExpenseResponse, error) {
	if projectID != "" {
		if _, err := uuid.Parse(projectID); err != nil {
			return nil, expenseerrors.ErrProjectNotFound
		}
	}

	expenses, err := s.repo.FindAll(ctx, projectID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExpenseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExpenseResponse{}, expenseerrors.ErrExpenseNotFound
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateExpenseRequest,
) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	e.Category = req.Category
	e.Description = req.Description
	e.Amount = req.Amount
	e.Date = date
	if req.PaymentMethod != "" {
		e.PaymentMethod = req.PaymentMethod
	}
	e.PaidBy = req.PaidBy

	if err := qtx.Update(ctx, e); err != nil {
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "updated", e.ID.String()); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "deleted", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) writeActivity(
	ctx context.Context,
	tx *sql.Tx,
	requestID, action, rowID string,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.ActivityEvent{
		EventType:  "activity",
		TableName:  "expenses",
		Action:     action,
		RowID:      rowID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "expenses",
		AggregateID:   rowID,
		EventType:     "activity",
		Topic:         events.ActivityTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(e Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:            e.ID.String(),
		ProjectID:     e.ProjectID.String(),
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          e.Date.Format("2006-01-02"),
		PaymentMethod: e.PaymentMethod,
		PaidBy:        e.PaidBy,
	}

	if e.Project != nil {
		resp.ProjectName = e.Project.Name
	}

	return resp
}
