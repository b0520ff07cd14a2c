package employee

import (
	"context"
	"database/sql"
	"testing"

	employeeerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn        func(tx *sql.Tx) Repository
	createFn        func(ctx context.Context, empl *Employee) error
	findAllFn       func(ctx context.Context) ([]Employee, error)
	findByIDFn      func(ctx context.Context, id string) (*Employee, error)
	findByCodeFn    func(ctx context.Context, code string) (*Employee, error)
	updateFn        func(ctx context.Context, empl *Employee) error
	deleteFn        func(ctx context.Context, id string) error
	existsFn        func(ctx context.Context, id string) (bool, error)
	projectExistsFn func(ctx context.Context, projectID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error {
	return f.createFn(ctx, empl)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByCode(ctx context.Context, code string) (*Employee, error) {
	return f.findByCodeFn(ctx, code)
}
func (f *fakeRepo) Update(ctx context.Context, empl *Employee) error {
	return f.updateFn(ctx, empl)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.existsFn(ctx, id)
}
func (f *fakeRepo) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	return f.projectExistsFn(ctx, projectID)
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestService_Create_MintsEmployeeCode(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Employee
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, empl *Employee) error { saved = *empl; return nil }

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:       "Ahmed Hassan",
		DateOfJoin: "2024-06-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000001", resp.EmployeeCode)
	assert.Equal(t, "EMP-000001", saved.EmployeeCode)
	assert.True(t, saved.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_KeepsProvidedCode(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, empl *Employee) error { return nil }

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:         "Omar Ali",
		EmployeeCode: "EMP-CUSTOM",
		DateOfJoin:   "2024-06-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-CUSTOM", resp.EmployeeCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_RejectsUnknownProject(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.projectExistsFn = func(ctx context.Context, projectID string) (bool, error) { return false, nil }
	repo.createFn = func(ctx context.Context, empl *Employee) error {
		t.Fatal("create must not run for an unknown project")
		return nil
	}

	projectID := uuid.New().String()
	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:       "Ahmed Hassan",
		DateOfJoin: "2024-06-01",
		ProjectID:  &projectID,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidDateOfJoin(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:       "Ahmed Hassan",
		DateOfJoin: "01/06/2024",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateOfJoin)
	assert.NoError(t, mock.ExpectationsWereMet())
}
