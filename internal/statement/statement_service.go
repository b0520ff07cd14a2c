package statement

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/payroll"
	statementerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/statement/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryKeyPrefix = "statements:summary:"

// Summary figures drive a dashboard header, so a short TTL is enough; stale
// data self-heals on the next refresh.
const summaryCacheTTL = 2 * time.Minute

//go:generate mockgen -source=statement_service.go -destination=mock/statement_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, month string) ([]Statement, error)
	GetByProject(ctx context.Context, projectID, month string) (Statement, error)
	GetSummary(ctx context.Context, month string) (Summary, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("statement.service"),
	}
}

func (s *service) GetAll(ctx context.Context, month string) ([]Statement, error) {
	m, err := resolveMonth(month)
	if err != nil {
		return nil, statementerrors.ErrInvalidMonth
	}

	rows, err := s.repo.ProjectTotals(ctx, m)
	if err != nil {
		return nil, err
	}

	statements := make([]Statement, len(rows))
	for i, row := range rows {
		statements[i] = mapToStatement(row, m)
	}
	return statements, nil
}

func (s *service) GetByProject(ctx context.Context, projectID, month string) (Statement, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return Statement{}, statementerrors.ErrProjectNotFound
	}

	m, err := resolveMonth(month)
	if err != nil {
		return Statement{}, statementerrors.ErrInvalidMonth
	}

	row, err := s.repo.ProjectTotalsByID(ctx, projectID, m)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Statement{}, statementerrors.ErrProjectNotFound
		}
		return Statement{}, err
	}

	return mapToStatement(*row, m), nil
}

func (s *service) GetSummary(ctx context.Context, month string) (Summary, error) {
	m, err := resolveMonth(month)
	if err != nil {
		return Summary{}, statementerrors.ErrInvalidMonth
	}

	cacheKey := summaryKeyPrefix + m.Format("2006-01")

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var summary Summary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return summary, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		row, err := s.repo.SummaryTotals(ctx, m)
		if err != nil {
			return nil, err
		}

		summary := Summary{
			Month:               m.Format("2006-01"),
			Projects:            row.Projects,
			Employees:           row.Employees,
			TotalPayroll:        row.TotalPayroll,
			TotalExpenses:       row.TotalExpenses,
			OutstandingAdvances: row.OutstandingAdvances,
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(summary); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL)
			}
		}

		return summary, nil
	})
	if err != nil {
		return Summary{}, err
	}

	return v.(Summary), nil
}

// resolveMonth defaults to the current month when no value is given.
func resolveMonth(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return payroll.ParseMonth(raw)
}

func mapToStatement(row projectTotalsRow, month time.Time) Statement {
	return Statement{
		ProjectID:       row.ProjectID,
		ProjectName:     row.ProjectName,
		Month:           month.Format("2006-01"),
		Budget:          row.Budget,
		TotalPayroll:    row.TotalPayroll,
		TotalExpenses:   row.TotalExpenses,
		TotalAdvances:   row.TotalAdvances,
		RemainingBudget: row.Budget - row.TotalPayroll - row.TotalExpenses,
	}
}
