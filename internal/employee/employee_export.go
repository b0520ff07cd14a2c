package employee

import (
	"context"
	"strconv"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/exporter"
)

func ExportSource(svc Service) exporter.SourceFunc {
	return func(ctx context.Context) (exporter.Dataset, error) {
		employees, err := svc.GetAll(ctx)
		if err != nil {
			return exporter.Dataset{}, err
		}

		rows := make([]map[string]string, len(employees))
		for i, e := range employees {
			rows[i] = map[string]string{
				"employee_code": e.EmployeeCode,
				"name":          e.Name,
				"iqama_number":  e.IqamaNumber,
				"role":          e.Role,
				"nationality":   e.Nationality,
				"phone":         e.Phone,
				"date_of_join":  e.DateOfJoin,
				"active":        strconv.FormatBool(e.Active),
			}
		}

		return exporter.Dataset{
			Name: "Employees",
			Columns: []exporter.Column{
				{Key: "employee_code", Header: "Code"},
				{Key: "name", Header: "Name"},
				{Key: "iqama_number", Header: "Iqama"},
				{Key: "role", Header: "Role"},
				{Key: "nationality", Header: "Nationality"},
				{Key: "phone", Header: "Phone"},
				{Key: "date_of_join", Header: "Date of Join"},
				{Key: "active", Header: "Active"},
			},
			Rows: rows,
		}, nil
	}
}
