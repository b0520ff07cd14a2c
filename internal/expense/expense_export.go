package expense

import (
	"context"
	"strconv"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/exporter"
)

func ExportSource(svc Service) exporter.SourceFunc {
	return func(ctx context.Context) (exporter.Dataset, error) {
		expenses, err := svc.GetAll(ctx, "")
		if err != nil {
			return exporter.Dataset{}, err
		}

		rows := make([]map[string]string, len(expenses))
		for i, e := range expenses {
			rows[i] = map[string]string{
				"project":        e.ProjectName,
				"category":       e.Category,
				"description":    e.Description,
				"amount":         strconv.FormatFloat(e.Amount, 'f', 2, 64),
				"date":           e.Date,
				"payment_method": e.PaymentMethod,
				"paid_by":        e.PaidBy,
			}
		}

		return exporter.Dataset{
			Name: "Expenses",
			Columns: []exporter.Column{
				{Key: "project", Header: "Project"},
				{Key: "category", Header: "Category"},
				{Key: "description", Header: "Description"},
				{Key: "amount", Header: "Amount"},
				{Key: "date", Header: "Date"},
				{Key: "payment_method", Header: "Payment Method"},
				{Key: "paid_by", Header: "Paid By"},
			},
			Rows: rows,
		}, nil
	}
}
