package payroll

import (
	"context"
	"strconv"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/exporter"
)

func ExportSource(svc Service) exporter.SourceFunc {
	return func(ctx context.Context) (exporter.Dataset, error) {
		payrolls, err := svc.GetAll(ctx, PayrollQueryFilter{})
		if err != nil {
			return exporter.Dataset{}, err
		}

		rows := make([]map[string]string, len(payrolls))
		for i, p := range payrolls {
			rows[i] = map[string]string{
				"employee":     p.EmployeeName,
				"month":        p.Month,
				"hours_worked": strconv.FormatFloat(p.HoursWorked, 'f', 2, 64),
				"rate":         strconv.FormatFloat(p.Rate, 'f', 2, 64),
				"gross_pay":    strconv.FormatFloat(p.GrossPay, 'f', 2, 64),
				"net_pay":      strconv.FormatFloat(p.NetPay, 'f', 2, 64),
				"status":       p.Status,
			}
		}

		return exporter.Dataset{
			Name: "Payroll",
			Columns: []exporter.Column{
				{Key: "employee", Header: "Employee"},
				{Key: "month", Header: "Month"},
				{Key: "hours_worked", Header: "Hours"},
				{Key: "rate", Header: "Rate"},
				{Key: "gross_pay", Header: "Gross Pay"},
				{Key: "net_pay", Header: "Net Pay"},
				{Key: "status", Header: "Status"},
			},
			Rows: rows,
		}, nil
	}
}
