package payroll

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	payrollerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn            func(tx *sql.Tx) Repository
	createFn            func(ctx context.Context, p *Payroll) error
	findAllFn           func(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	findByIDFn          func(ctx context.Context, id string) (*Payroll, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]Payroll, error)
	updateFn            func(ctx context.Context, p *Payroll) error
	updateNetPayFn      func(ctx context.Context, id string, netPay float64) error
	deleteFn            func(ctx context.Context, id string) error
	employeeExistsFn    func(ctx context.Context, employeeID string) (bool, error)
	projectExistsFn     func(ctx context.Context, projectID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, p *Payroll) error {
	return f.createFn(ctx, p)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) Update(ctx context.Context, p *Payroll) error {
	return f.updateFn(ctx, p)
}
func (f *fakeRepo) UpdateNetPay(ctx context.Context, id string, netPay float64) error {
	return f.updateNetPayFn(ctx, id, netPay)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}
func (f *fakeRepo) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	return f.projectExistsFn(ctx, projectID)
}

type fakeLedger struct {
	outstandingFn func(ctx context.Context, employeeID string) (float64, error)
}

func (f *fakeLedger) OutstandingTotal(ctx context.Context, employeeID string) (float64, error) {
	return f.outstandingFn(ctx, employeeID)
}

func TestService_Create_ComputesGrossAndNet(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved Payroll
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, p *Payroll) error { saved = *p; return nil }
	repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }

	ledger := &fakeLedger{
		outstandingFn: func(ctx context.Context, id string) (float64, error) { return 500, nil },
	}

	svc := NewService(db, repo, ledger, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(ctx, CreatePayrollRequest{
		EmployeeID:  employeeID,
		Month:       "2025-03",
		HoursWorked: 160,
		Rate:        25,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4000.0, resp.GrossPay)
	assert.Equal(t, 3500.0, resp.NetPay)
	assert.Equal(t, StatusUnpaid, resp.Status)
	assert.Equal(t, "2025-03-01", resp.Month)
	assert.Equal(t, 4000.0, saved.GrossPay)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_UnknownEmployee(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return false, nil }

	ledger := &fakeLedger{
		outstandingFn: func(ctx context.Context, id string) (float64, error) { return 0, nil },
	}

	svc := NewService(db, repo, ledger, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		Month:       "2025-03",
		HoursWorked: 160,
		Rate:        25,
	})
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidMonth(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeLedger{}, nil)

	_, err := svc.Create(context.Background(), CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		Month:       "March 2025",
		HoursWorked: 160,
		Rate:        25,
	})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
}

func TestService_Update_RecomputesAgainstLedger(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	recordID := uuid.New()

	existing := Payroll{
		ID:          recordID,
		EmployeeID:  employeeID,
		HoursWorked: 120,
		Rate:        25,
		GrossPay:    3000,
		NetPay:      2500,
		Status:      StatusUnpaid,
	}

	var saved Payroll
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Payroll, error) {
		p := existing
		return &p, nil
	}
	repo.updateFn = func(ctx context.Context, p *Payroll) error { saved = *p; return nil }

	ledger := &fakeLedger{
		outstandingFn: func(ctx context.Context, id string) (float64, error) { return 1200, nil },
	}

	svc := NewService(db, repo, ledger, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), recordID.String(), UpdatePayrollRequest{
		Month:       "2025-03",
		HoursWorked: 120,
		Rate:        25,
		Status:      StatusUnpaid,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3000.0, resp.GrossPay)
	assert.Equal(t, 1800.0, resp.NetPay)
	assert.Equal(t, 1800.0, saved.NetPay)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_LedgerFailureAborts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.createFn = func(ctx context.Context, p *Payroll) error {
		t.Fatal("create must not run when the ledger lookup fails")
		return nil
	}

	ledger := &fakeLedger{
		outstandingFn: func(ctx context.Context, id string) (float64, error) {
			return 0, errors.New("ledger down")
		},
	}

	svc := NewService(db, repo, ledger, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		Month:       "2025-03",
		HoursWorked: 160,
		Rate:        25,
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
