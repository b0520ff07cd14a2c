package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/employee/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/contextutil"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  zap.L().Named("employee.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dateOfJoin, err := time.Parse("2006-01-02", req.DateOfJoin)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoin
	}

	var projectID *uuid.UUID
	if req.ProjectID != nil && *req.ProjectID != "" {
		exists, err := qtx.ProjectExists(ctx, *req.ProjectID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrProjectNotFound
		}
		parsed := uuid.MustParse(*req.ProjectID)
		projectID = &parsed
	}

	if req.EmployeeCode == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
		if err != nil {
			s.logger.Error("generate employee code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeCode = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		IqamaNumber:  req.IqamaNumber,
		Role:         req.Role,
		Nationality:  req.Nationality,
		Phone:        req.Phone,
		DateOfJoin:   dateOfJoin,
		ProjectID:    projectID,
		Active:       true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "employees", "created", empl.ID.String()); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	dateOfJoin, err := time.Parse("2006-01-02", req.DateOfJoin)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoin
	}

	var projectID *uuid.UUID
	if req.ProjectID != nil && *req.ProjectID != "" {
		exists, err := qtx.ProjectExists(ctx, *req.ProjectID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrProjectNotFound
		}
		parsed := uuid.MustParse(*req.ProjectID)
		projectID = &parsed
	}

	empl.Name = req.Name
	empl.EmployeeCode = req.EmployeeCode
	empl.IqamaNumber = req.IqamaNumber
	empl.Role = req.Role
	empl.Nationality = req.Nationality
	empl.Phone = req.Phone
	empl.DateOfJoin = dateOfJoin
	empl.ProjectID = projectID
	empl.Active = req.Active

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "employees", "updated", empl.ID.String()); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
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

	if err := s.writeActivity(ctx, tx, rid, "employees", "deleted", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) writeActivity(
	ctx context.Context,
	tx *sql.Tx,
	requestID, tableName, action, rowID string,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.ActivityEvent{
		EventType:  "activity",
		TableName:  tableName,
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
		AggregateType: tableName,
		AggregateID:   rowID,
		EventType:     "activity",
		Topic:         events.ActivityTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		Name:         empl.Name,
		EmployeeCode: empl.EmployeeCode,
		IqamaNumber:  empl.IqamaNumber,
		Role:         empl.Role,
		Nationality:  empl.Nationality,
		Phone:        empl.Phone,
		DateOfJoin:   empl.DateOfJoin.Format("2006-01-02"),
		Active:       empl.Active,
	}

	if empl.ProjectID != nil {
		v := empl.ProjectID.String()
		resp.ProjectID = &v
	}

	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, empl := range employees {
		resp[i] = mapToResponse(empl)
	}
	return resp
}
