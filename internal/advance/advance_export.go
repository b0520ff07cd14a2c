package advance

import (
	"context"
	"strconv"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/exporter"
)

func ExportSource(svc Service) exporter.SourceFunc {
	return func(ctx context.Context) (exporter.Dataset, error) {
		advances, err := svc.GetAll(ctx, "")
		if err != nil {
			return exporter.Dataset{}, err
		}

		rows := make([]map[string]string, len(advances))
		for i, a := range advances {
			rows[i] = map[string]string{
				"employee":    a.EmployeeName,
				"amount":      strconv.FormatFloat(a.Amount, 'f', 2, 64),
				"note":        a.Note,
				"date":        a.Date,
				"auto_deduct": strconv.FormatBool(a.AutoDeduct),
				"paid":        strconv.FormatBool(a.Paid),
			}
		}

		return exporter.Dataset{
			Name: "Advances",
			Columns: []exporter.Column{
				{Key: "employee", Header: "Employee"},
				{Key: "amount", Header: "Amount"},
				{Key: "note", Header: "Note"},
				{Key: "date", Header: "Date"},
				{Key: "auto_deduct", Header: "Auto Deduct"},
				{Key: "paid", Header: "Paid"},
			},
			Rows: rows,
		}, nil
	}
}
