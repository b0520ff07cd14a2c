package importer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/advance"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/employee"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/expense"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/payroll"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/project"
	reconcileerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type Service interface {
	Import(ctx context.Context, entity EntityType, rows []Row) (Report, error)
}

type service struct {
	employees employee.Service
	projects  project.Service
	payrolls  payroll.Service
	advances  advance.Service
	expenses  expense.Service
	logger    *zap.Logger
}

func NewService(
	employees employee.Service,
	projects project.Service,
	payrolls payroll.Service,
	advances advance.Service,
	expenses expense.Service,
) Service {
	return &service{
		employees: employees,
		projects:  projects,
		payrolls:  payrolls,
		advances:  advances,
		expenses:  expenses,
		logger:    zap.L().Named("importer.service"),
	}
}

// Import runs row by row. A bad row is recorded and skipped so one typo in
// a 200-line sheet does not force the office to re-key everything.
func (s *service) Import(ctx context.Context, entity EntityType, rows []Row) (Report, error) {
	report := Report{Processed: len(rows)}

	for i, row := range rows {
		rowNum := i + 2 // 1-based plus the header line

		var err error
		switch entity {
		case EntityEmployees:
			err = s.importEmployee(ctx, row)
		case EntityPayrolls:
			err = s.importPayroll(ctx, row)
		case EntityAdvances:
			err = s.importAdvance(ctx, row)
		case EntityExpenses:
			err = s.importExpense(ctx, row)
		default:
			return Report{}, ErrUnknownEntity
		}

		if err != nil {
			report.addError(rowNum, err.Error())
			continue
		}
		report.Succeeded++
	}

	s.logger.Info("import finished",
		zap.String("entity", string(entity)),
		zap.Int("processed", report.Processed),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("skipped", report.Skipped),
	)

	return report, nil
}

func (s *service) importEmployee(ctx context.Context, row Row) error {
	name := row["name"]
	if name == "" {
		return fmt.Errorf("name is required")
	}

	dateOfJoin := row["date_of_join"]
	if dateOfJoin == "" {
		dateOfJoin = time.Now().UTC().Format("2006-01-02")
	}

	req := employee.CreateEmployeeRequest{
		Name:         name,
		EmployeeCode: row["employee_code"],
		IqamaNumber:  row["iqama_number"],
		Role:         row["role"],
		Nationality:  row["nationality"],
		Phone:        row["phone"],
		DateOfJoin:   dateOfJoin,
	}

	if projectName := row["project"]; projectName != "" {
		proj, err := s.projects.GetByName(ctx, projectName)
		if err != nil {
			return fmt.Errorf("project %q not found", projectName)
		}
		req.ProjectID = &proj.ID
	}

	_, err := s.employees.Create(ctx, req)
	return err
}

func (s *service) importPayroll(ctx context.Context, row Row) error {
	empl, err := s.resolveEmployee(ctx, row)
	if err != nil {
		return err
	}

	month := row["month"]
	if month == "" {
		return fmt.Errorf("month is required")
	}

	hours, err := floatField(row, "hours_worked")
	if err != nil {
		return err
	}

	rate, err := s.resolveRate(ctx, row, empl)
	if err != nil {
		return err
	}

	req := payroll.CreatePayrollRequest{
		EmployeeID:  empl.ID,
		Month:       month,
		HoursWorked: hours,
		Rate:        rate,
	}
	if empl.ProjectID != nil {
		req.ProjectID = empl.ProjectID
	}

	_, err = s.payrolls.Create(ctx, req)
	return err
}

func (s *service) importAdvance(ctx context.Context, row Row) error {
	empl, err := s.resolveEmployee(ctx, row)
	if err != nil {
		return err
	}

	amount, err := floatField(row, "amount")
	if err != nil {
		return err
	}

	date := row["date"]
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	_, err = s.advances.Create(ctx, advance.CreateAdvanceRequest{
		EmployeeID: empl.ID,
		Amount:     amount,
		Note:       row["note"],
		Date:       date,
	})
	if err != nil && errors.Is(err, reconcileerrors.ErrReconcilePending) {
		// The advance itself is saved; the retry worker settles the rest.
		return nil
	}
	return err
}

func (s *service) importExpense(ctx context.Context, row Row) error {
	projectName := row["project"]
	if projectName == "" {
		return fmt.Errorf("project is required")
	}

	proj, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return fmt.Errorf("project %q not found", projectName)
	}

	amount, err := floatField(row, "amount")
	if err != nil {
		return err
	}

	date := row["date"]
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	_, err = s.expenses.Create(ctx, expense.CreateExpenseRequest{
		ProjectID:     proj.ID,
		Category:      row["category"],
		Description:   row["description"],
		Amount:        amount,
		Date:          date,
		PaymentMethod: row["payment_method"],
		PaidBy:        row["paid_by"],
	})
	return err
}

func (s *service) resolveEmployee(ctx context.Context, row Row) (employee.EmployeeResponse, error) {
	if id := row["employee_id"]; id != "" {
		return s.employees.GetByID(ctx, id)
	}
	if code := row["employee_code"]; code != "" {
		empl, err := s.employees.GetByCode(ctx, code)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("employee %q not found", code)
		}
		return empl, nil
	}
	return employee.EmployeeResponse{}, fmt.Errorf("employee_id or employee_code is required")
}

// resolveRate prefers the rate on the row; when the sheet leaves it blank
// the employee's project role rate fills in.
func (s *service) resolveRate(
	ctx context.Context,
	row Row,
	empl employee.EmployeeResponse,
) (float64, error) {
	if raw := row["rate"]; raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid rate %q", raw)
		}
		return rate, nil
	}

	if empl.ProjectID == nil {
		return 0, fmt.Errorf("rate is required for employees without a project")
	}

	proj, err := s.projects.GetByID(ctx, *empl.ProjectID)
	if err != nil {
		return 0, err
	}

	rate, ok := proj.RoleRates[empl.Role]
	if !ok {
		return 0, fmt.Errorf("no rate configured for role %q on project %q", empl.Role, proj.Name)
	}
	return rate, nil
}

func floatField(row Row, key string) (float64, error) {
	raw := row[key]
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return value, nil
}
