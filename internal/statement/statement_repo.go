package statement

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type projectTotalsRow struct {
	ProjectID     string
	ProjectName   string
	Budget        float64
	TotalPayroll  float64
	TotalExpenses float64
	TotalAdvances float64
}

type summaryRow struct {
	Projects            int
	Employees           int
	TotalPayroll        float64
	TotalExpenses       float64
	OutstandingAdvances float64
}

//go:generate mockgen -source=statement_repo.go -destination=mock/statement_repo_mock.go -package=mock
type Repository interface {
	ProjectTotals(ctx context.Context, month time.Time) ([]projectTotalsRow, error)
	ProjectTotalsByID(ctx context.Context, projectID string, month time.Time) (*projectTotalsRow, error)
	SummaryTotals(ctx context.Context, month time.Time) (*summaryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Advances have no project column; they attach to a project through the
// employee's current assignment.
const projectTotalsQuery = `
SELECT
    p.id   AS project_id,
    p.name AS project_name,
    p.budget,
    COALESCE(pay.total_payroll, 0)  AS total_payroll,
    COALESCE(exp.total_expenses, 0) AS total_expenses,
    COALESCE(adv.total_advances, 0) AS total_advances
FROM projects p
LEFT JOIN (
    SELECT project_id, SUM(gross_pay) AS total_payroll
    FROM payrolls
    WHERE month = @month
    GROUP BY project_id
) pay ON pay.project_id = p.id
LEFT JOIN (
    SELECT project_id, SUM(amount) AS total_expenses
    FROM expenses
    WHERE date >= @month AND date < @next_month
    GROUP BY project_id
) exp ON exp.project_id = p.id
LEFT JOIN (
    SELECT e.project_id, SUM(a.amount) AS total_advances
    FROM advances a
    JOIN employees e ON e.id = a.employee_id
    WHERE a.date >= @month AND a.date < @next_month
    GROUP BY e.project_id
) adv ON adv.project_id = p.id
`

func (r *repository) ProjectTotals(ctx context.Context, month time.Time) ([]projectTotalsRow, error) {
	var rows []projectTotalsRow
	err := r.db.WithContext(ctx).
		Raw(projectTotalsQuery+" ORDER BY p.name ASC", monthArgs(month)).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ProjectTotalsByID(
	ctx context.Context,
	projectID string,
	month time.Time,
) (*projectTotalsRow, error) {
	var row projectTotalsRow
	res := r.db.WithContext(ctx).
		Raw(projectTotalsQuery+" WHERE p.id = @project_id", monthArgs(month, projectID)).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

const summaryQuery = `
SELECT
    (SELECT COUNT(*) FROM projects)                 AS projects,
    (SELECT COUNT(*) FROM employees WHERE active)   AS employees,
    COALESCE((SELECT SUM(gross_pay) FROM payrolls
        WHERE month = @month), 0)                   AS total_payroll,
    COALESCE((SELECT SUM(amount) FROM expenses
        WHERE date >= @month AND date < @next_month), 0) AS total_expenses,
    COALESCE((SELECT SUM(amount) FROM advances
        WHERE paid = false), 0)                          AS outstanding_advances
`

func (r *repository) SummaryTotals(ctx context.Context, month time.Time) (*summaryRow, error) {
	var row summaryRow
	err := r.db.WithContext(ctx).
		Raw(summaryQuery, monthArgs(month)).
		Scan(&row).Error
	return &row, err
}

func monthArgs(month time.Time, projectID ...string) map[string]interface{} {
	args := map[string]interface{}{
		"month":      month,
		"next_month": month.AddDate(0, 1, 0),
	}
	if len(projectID) > 0 {
		args["project_id"] = projectID[0]
	}
	return args
}
