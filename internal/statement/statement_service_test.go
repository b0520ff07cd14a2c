package statement

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	statementerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/statement/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	projectTotalsFn     func(ctx context.Context, month time.Time) ([]projectTotalsRow, error)
	projectTotalsByIDFn func(ctx context.Context, projectID string, month time.Time) (*projectTotalsRow, error)
	summaryTotalsFn     func(ctx context.Context, month time.Time) (*summaryRow, error)
}

func (f *fakeRepo) ProjectTotals(ctx context.Context, month time.Time) ([]projectTotalsRow, error) {
	return f.projectTotalsFn(ctx, month)
}
func (f *fakeRepo) ProjectTotalsByID(ctx context.Context, projectID string, month time.Time) (*projectTotalsRow, error) {
	return f.projectTotalsByIDFn(ctx, projectID, month)
}
func (f *fakeRepo) SummaryTotals(ctx context.Context, month time.Time) (*summaryRow, error) {
	return f.summaryTotalsFn(ctx, month)
}

func TestService_GetAll_ComputesRemainingBudget(t *testing.T) {
	repo := &fakeRepo{
		projectTotalsFn: func(ctx context.Context, month time.Time) ([]projectTotalsRow, error) {
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), month)
			return []projectTotalsRow{
				{
					ProjectID:     "p1",
					ProjectName:   "Tower Site",
					Budget:        100000,
					TotalPayroll:  42000,
					TotalExpenses: 8000,
					TotalAdvances: 3000,
				},
			}, nil
		},
	}

	svc := NewService(repo, nil)

	statements, err := svc.GetAll(context.Background(), "2025-03")
	assert.NoError(t, err)
	assert.Len(t, statements, 1)
	assert.Equal(t, "2025-03", statements[0].Month)
	assert.Equal(t, 50000.0, statements[0].RemainingBudget)
	assert.Equal(t, 3000.0, statements[0].TotalAdvances)
}

func TestService_GetAll_InvalidMonth(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.GetAll(context.Background(), "March 2025")
	assert.ErrorIs(t, err, statementerrors.ErrInvalidMonth)
}

func TestService_GetByProject_NotFound(t *testing.T) {
	repo := &fakeRepo{
		projectTotalsByIDFn: func(ctx context.Context, projectID string, month time.Time) (*projectTotalsRow, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo, nil)

	_, err := svc.GetByProject(context.Background(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "2025-03")
	assert.ErrorIs(t, err, statementerrors.ErrProjectNotFound)
}

func TestService_GetSummary_CacheMissStoresResult(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeRepo{
		summaryTotalsFn: func(ctx context.Context, month time.Time) (*summaryRow, error) {
			return &summaryRow{
				Projects:            3,
				Employees:           24,
				TotalPayroll:        96000,
				TotalExpenses:       14000,
				OutstandingAdvances: 5200,
			}, nil
		},
	}

	expected := Summary{
		Month:               "2025-03",
		Projects:            3,
		Employees:           24,
		TotalPayroll:        96000,
		TotalExpenses:       14000,
		OutstandingAdvances: 5200,
	}
	jsonData, err := json.Marshal(expected)
	assert.NoError(t, err)

	cacheKey := summaryKeyPrefix + "2025-03"
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSet(cacheKey, jsonData, summaryCacheTTL).SetVal("OK")

	svc := NewService(repo, rdb)

	summary, err := svc.GetSummary(context.Background(), "2025-03")
	assert.NoError(t, err)
	assert.Equal(t, expected, summary)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetSummary_CacheHitSkipsRepository(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeRepo{
		summaryTotalsFn: func(ctx context.Context, month time.Time) (*summaryRow, error) {
			t.Fatal("repository must not be hit on a cache hit")
			return nil, nil
		},
	}

	cached := Summary{Month: "2025-03", Projects: 2, Employees: 10, TotalPayroll: 40000}
	jsonData, err := json.Marshal(cached)
	assert.NoError(t, err)

	cacheKey := summaryKeyPrefix + "2025-03"
	redisMock.ExpectGet(cacheKey).SetVal(string(jsonData))

	svc := NewService(repo, rdb)

	summary, err := svc.GetSummary(context.Background(), "2025-03")
	assert.NoError(t, err)
	assert.Equal(t, cached, summary)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetSummary_WorksWithoutRedis(t *testing.T) {
	repo := &fakeRepo{
		summaryTotalsFn: func(ctx context.Context, month time.Time) (*summaryRow, error) {
			return &summaryRow{Projects: 1, Employees: 4}, nil
		},
	}

	svc := NewService(repo, nil)

	summary, err := svc.GetSummary(context.Background(), "2025-03")
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Projects)
	assert.Equal(t, 4, summary.Employees)
}
