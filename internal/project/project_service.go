package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	projecterrors "github.com/Mosab-97/Dalal-Payroll-App/internal/project/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/contextutil"

	"github.com/google/uuid"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	GetByName(ctx context.Context, name string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outboxRepo}
}

func (s *service) Create(
	ctx context.Context,
	req CreateProjectRequest,
) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	proj := &Project{
		ID:        uuid.New(),
		Name:      req.Name,
		Budget:    req.Budget,
		Status:    status,
		RoleRates: req.RoleRates,
	}
	if proj.RoleRates == nil {
		proj.RoleRates = RoleRates{}
	}

	if err := qtx.Create(ctx, proj); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "created", proj.ID.String()); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*proj), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(projects), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	proj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*proj), nil
}

func (s *service) GetByName(ctx context.Context, name string) (ProjectResponse, error) {
	proj, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*proj), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateProjectRequest,
) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	proj, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	proj.Name = req.Name
	proj.Budget = req.Budget
	proj.Status = req.Status
	proj.RoleRates = req.RoleRates
	if proj.RoleRates == nil {
		proj.RoleRates = RoleRates{}
	}

	if err := qtx.Update(ctx, proj); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := s.writeActivity(ctx, tx, rid, "updated", proj.ID.String()); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*proj), nil
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
		TableName:  "projects",
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
		AggregateType: "projects",
		AggregateID:   rowID,
		EventType:     "activity",
		Topic:         events.ActivityTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(proj Project) ProjectResponse {
	return ProjectResponse{
		ID:        proj.ID.String(),
		Name:      proj.Name,
		Budget:    proj.Budget,
		Status:    proj.Status,
		RoleRates: proj.RoleRates,
		CreatedAt: proj.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(projects []Project) []ProjectResponse {
	resp := make([]ProjectResponse, len(projects))
	for i, proj := range projects {
		resp[i] = mapToResponse(proj)
	}
	return resp
}
