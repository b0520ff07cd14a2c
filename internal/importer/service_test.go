package importer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/advance"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/employee"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/expense"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/payroll"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/project"
	reconcileerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	employee.Service
	createFn    func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getByCodeFn func(ctx context.Context, code string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	return f.getByCodeFn(ctx, code)
}

type fakeProjectService struct {
	project.Service
	getByNameFn func(ctx context.Context, name string) (project.ProjectResponse, error)
	getByIDFn   func(ctx context.Context, id string) (project.ProjectResponse, error)
}

func (f *fakeProjectService) GetByName(ctx context.Context, name string) (project.ProjectResponse, error) {
	return f.getByNameFn(ctx, name)
}
func (f *fakeProjectService) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	return f.getByIDFn(ctx, id)
}

type fakePayrollService struct {
	payroll.Service
	createFn func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
}

func (f *fakePayrollService) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.createFn(ctx, req)
}

type fakeAdvanceService struct {
	advance.Service
	createFn func(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error)
}

func (f *fakeAdvanceService) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	return f.createFn(ctx, req)
}

type fakeExpenseService struct {
	expense.Service
	createFn func(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error)
}

func (f *fakeExpenseService) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	return f.createFn(ctx, req)
}

func TestService_Import_PartialFailure(t *testing.T) {
	created := 0
	employees := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			created++
			return employee.EmployeeResponse{ID: uuid.New().String(), Name: req.Name}, nil
		},
	}
	projects := &fakeProjectService{
		getByNameFn: func(ctx context.Context, name string) (project.ProjectResponse, error) {
			return project.ProjectResponse{}, errors.New("not found")
		},
	}

	svc := NewService(employees, projects, nil, nil, nil)

	rows := make([]Row, 0, 10)
	for i := 0; i < 10; i++ {
		row := Row{"name": fmt.Sprintf("Worker %d", i), "date_of_join": "2025-01-01"}
		if i == 3 {
			row["project"] = "No Such Site"
		}
		rows = append(rows, row)
	}

	report, err := svc.Import(context.Background(), EntityEmployees, rows)
	assert.NoError(t, err)
	assert.Equal(t, 10, report.Processed)
	assert.Equal(t, 9, report.Succeeded)
	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, 5, report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Message, "No Such Site")
	assert.Equal(t, 9, created)
}

func TestService_ImportPayroll_RateFallsBackToProjectRoleRate(t *testing.T) {
	employeeID := uuid.New().String()
	projectID := uuid.New().String()

	employees := &fakeEmployeeService{
		getByCodeFn: func(ctx context.Context, code string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{
				ID:        employeeID,
				Role:      "Electrician",
				ProjectID: &projectID,
			}, nil
		},
	}
	projects := &fakeProjectService{
		getByIDFn: func(ctx context.Context, id string) (project.ProjectResponse, error) {
			assert.Equal(t, projectID, id)
			return project.ProjectResponse{
				ID:        projectID,
				Name:      "Tower Site",
				RoleRates: map[string]float64{"Electrician": 30},
			}, nil
		},
	}

	var got payroll.CreatePayrollRequest
	payrolls := &fakePayrollService{
		createFn: func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			got = req
			return payroll.PayrollResponse{ID: uuid.New().String()}, nil
		},
	}

	svc := NewService(employees, projects, payrolls, nil, nil)

	report, err := svc.Import(context.Background(), EntityPayrolls, []Row{
		{"employee_code": "EMP-000101", "hours_worked": "160", "month": "2025-03"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, employeeID, got.EmployeeID)
	assert.Equal(t, 160.0, got.HoursWorked)
	assert.Equal(t, 30.0, got.Rate)
}

func TestService_ImportPayroll_UnknownEmployeeIsRowError(t *testing.T) {
	employees := &fakeEmployeeService{
		getByCodeFn: func(ctx context.Context, code string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, errors.New("not found")
		},
	}

	svc := NewService(employees, nil, nil, nil, nil)

	report, err := svc.Import(context.Background(), EntityPayrolls, []Row{
		{"employee_code": "EMP-999999", "hours_worked": "160", "month": "2025-03", "rate": "25"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 1, report.Skipped)
	assert.Contains(t, report.Errors[0].Message, "EMP-999999")
}

func TestService_ImportAdvance_PendingReconciliationCountsAsSuccess(t *testing.T) {
	employeeID := uuid.New().String()

	employees := &fakeEmployeeService{
		getByCodeFn: func(ctx context.Context, code string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: employeeID}, nil
		},
	}
	advances := &fakeAdvanceService{
		createFn: func(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
			return advance.AdvanceResponse{ID: uuid.New().String()}, reconcileerrors.ErrReconcilePending
		},
	}

	svc := NewService(employees, nil, nil, advances, nil)

	report, err := svc.Import(context.Background(), EntityAdvances, []Row{
		{"employee_code": "EMP-000101", "amount": "500", "date": "2025-03-10"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 0, report.Skipped)
}

func TestService_ImportExpense_ResolvesProjectByName(t *testing.T) {
	projectID := uuid.New().String()

	projects := &fakeProjectService{
		getByNameFn: func(ctx context.Context, name string) (project.ProjectResponse, error) {
			assert.Equal(t, "Tower Site", name)
			return project.ProjectResponse{ID: projectID, Name: name}, nil
		},
	}

	var got expense.CreateExpenseRequest
	expenses := &fakeExpenseService{
		createFn: func(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
			got = req
			return expense.ExpenseResponse{ID: uuid.New().String()}, nil
		},
	}

	svc := NewService(nil, projects, nil, nil, expenses)

	report, err := svc.Import(context.Background(), EntityExpenses, []Row{
		{"project": "Tower Site", "category": "Fuel", "amount": "320.50", "date": "2025-03-12"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, projectID, got.ProjectID)
	assert.Equal(t, 320.5, got.Amount)
}
