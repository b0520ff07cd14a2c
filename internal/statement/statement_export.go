package statement

import (
	"context"
	"strconv"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/exporter"
)

func ExportSource(svc Service) exporter.SourceFunc {
	return func(ctx context.Context) (exporter.Dataset, error) {
		statements, err := svc.GetAll(ctx, "")
		if err != nil {
			return exporter.Dataset{}, err
		}

		money := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

		rows := make([]map[string]string, len(statements))
		for i, st := range statements {
			rows[i] = map[string]string{
				"project":          st.ProjectName,
				"month":            st.Month,
				"budget":           money(st.Budget),
				"total_payroll":    money(st.TotalPayroll),
				"total_expenses":   money(st.TotalExpenses),
				"total_advances":   money(st.TotalAdvances),
				"remaining_budget": money(st.RemainingBudget),
			}
		}

		return exporter.Dataset{
			Name: "Statements",
			Columns: []exporter.Column{
				{Key: "project", Header: "Project"},
				{Key: "month", Header: "Month"},
				{Key: "budget", Header: "Budget"},
				{Key: "total_payroll", Header: "Total Payroll"},
				{Key: "total_expenses", Header: "Total Expenses"},
				{Key: "total_advances", Header: "Total Advances"},
				{Key: "remaining_budget", Header: "Remaining Budget"},
			},
			Rows: rows,
		}, nil
	}
}
