package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	payrollerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/payroll/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter PayrollQueryFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger AdvanceLedger
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger AdvanceLedger,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:     db,
		repo:   repo,
		ledger: ledger,
		outbox: outboxRepo,
		logger: zap.L().Named("payroll.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	month, err := ParseMonth(req.Month)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidMonth
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !exists {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	var projectID *uuid.UUID
	if req.ProjectID != nil && *req.ProjectID != "" {
		exists, err := qtx.ProjectExists(ctx, *req.ProjectID)
		if err != nil {
			return PayrollResponse{}, err
		}
		if !exists {
			return PayrollResponse{}, payrollerrors.ErrProjectNotFound
		}
		parsed := uuid.MustParse(*req.ProjectID)
		projectID = &parsed
	}

	outstanding, err := s.ledger.OutstandingTotal(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("outstanding advance lookup failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return PayrollResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusUnpaid
	}

	gross := GrossPay(req.HoursWorked, req.Rate)
	p := &Payroll{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		ProjectID:   projectID,
		Month:       month,
		HoursWorked: req.HoursWorked,
		Rate:        req.Rate,
		GrossPay:    gross,
		NetPay:      NetPay(gross, outstanding),
		Status:      status,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "created", p.ID.String()); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter PayrollQueryFilter,
) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	month, err := ParseMonth(req.Month)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidMonth
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	var projectID *uuid.UUID
	if req.ProjectID != nil && *req.ProjectID != "" {
		exists, err := qtx.ProjectExists(ctx, *req.ProjectID)
		if err != nil {
			return PayrollResponse{}, err
		}
		if !exists {
			return PayrollResponse{}, payrollerrors.ErrProjectNotFound
		}
		parsed := uuid.MustParse(*req.ProjectID)
		projectID = &parsed
	}

	outstanding, err := s.ledger.OutstandingTotal(ctx, p.EmployeeID.String())
	if err != nil {
		return PayrollResponse{}, err
	}

	p.ProjectID = projectID
	p.Month = month
	p.HoursWorked = req.HoursWorked
	p.Rate = req.Rate
	p.GrossPay = GrossPay(req.HoursWorked, req.Rate)
	p.NetPay = NetPay(p.GrossPay, outstanding)
	p.Status = req.Status

	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "updated", p.ID.String()); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*p), nil
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
		TableName:  "payroll",
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
		AggregateType: "payroll",
		AggregateID:   rowID,
		EventType:     "activity",
		Topic:         events.ActivityTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		Month:       p.Month.Format("2006-01-02"),
		HoursWorked: p.HoursWorked,
		Rate:        p.Rate,
		GrossPay:    p.GrossPay,
		NetPay:      p.NetPay,
		Status:      p.Status,
	}

	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
	}
	if p.ProjectID != nil {
		v := p.ProjectID.String()
		resp.ProjectID = &v
	}

	return resp
}
