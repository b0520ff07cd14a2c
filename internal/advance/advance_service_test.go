package advance

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile"
	reconcileerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn           func(tx *sql.Tx) Repository
	createFn           func(ctx context.Context, a *Advance) error
	findAllFn          func(ctx context.Context, employeeID string) ([]Advance, error)
	findByIDFn         func(ctx context.Context, id string) (*Advance, error)
	updateFn           func(ctx context.Context, a *Advance) error
	deleteFn           func(ctx context.Context, id string) error
	outstandingFn      func(ctx context.Context, employeeID string) (float64, error)
	employeeExistsFn   func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Advance) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindAll(ctx context.Context, employeeID string) ([]Advance, error) {
	return f.findAllFn(ctx, employeeID)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Advance, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, a *Advance) error {
	return f.updateFn(ctx, a)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) OutstandingTotal(ctx context.Context, employeeID string) (float64, error) {
	return f.outstandingFn(ctx, employeeID)
}
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}

type fakeReconciler struct {
	reconcileFn func(ctx context.Context, employeeID string) (reconcile.Result, error)
}

func (f *fakeReconciler) ReconcileEmployee(ctx context.Context, employeeID string) (reconcile.Result, error) {
	return f.reconcileFn(ctx, employeeID)
}
func (f *fakeReconciler) RetryPending(ctx context.Context, batchSize int) (int, error) {
	return 0, nil
}

func TestService_Create_CommitsBeforeReconciling(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()

	var order []string
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.createFn = func(ctx context.Context, a *Advance) error {
		order = append(order, "persist")
		return nil
	}

	reconciler := &fakeReconciler{
		reconcileFn: func(ctx context.Context, id string) (reconcile.Result, error) {
			order = append(order, "reconcile")
			return reconcile.Result{EmployeeID: id, OutstandingAdvances: 500, UpdatedPayrolls: 1}, nil
		},
	}

	svc := NewService(db, repo, reconciler, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateAdvanceRequest{
		EmployeeID: employeeID,
		Amount:     500,
		Date:       "2025-03-10",
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"persist", "reconcile"}, order)
	assert.NotNil(t, resp.Reconciliation)
	assert.Equal(t, 500.0, resp.Reconciliation.OutstandingAdvances)
	assert.True(t, resp.AutoDeduct)
	assert.False(t, resp.Paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_ReconcilePendingStillReturnsSavedRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.createFn = func(ctx context.Context, a *Advance) error { return nil }

	reconciler := &fakeReconciler{
		reconcileFn: func(ctx context.Context, id string) (reconcile.Result, error) {
			return reconcile.Result{EmployeeID: id},
				reconcileerrors.ErrReconcilePending.Wrap(errors.New("db busy"))
		},
	}

	svc := NewService(db, repo, reconciler, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateAdvanceRequest{
		EmployeeID: uuid.New().String(),
		Amount:     500,
		Date:       "2025-03-10",
	})
	assert.ErrorIs(t, err, reconcileerrors.ErrReconcilePending)
	assert.Equal(t, 500.0, resp.Amount)
	assert.NotEmpty(t, resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_RejectsUnknownEmployee(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) { return false, nil }

	reconciler := &fakeReconciler{
		reconcileFn: func(ctx context.Context, id string) (reconcile.Result, error) {
			t.Fatal("reconcile must not run when the advance is rejected")
			return reconcile.Result{}, nil
		},
	}

	svc := NewService(db, repo, reconciler, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateAdvanceRequest{
		EmployeeID: uuid.New().String(),
		Amount:     500,
		Date:       "2025-03-10",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_ReconcilesAfterRemoval(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	advanceID := uuid.New()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Advance, error) {
		return &Advance{ID: advanceID, EmployeeID: employeeID, Amount: 500}, nil
	}
	repo.deleteFn = func(ctx context.Context, id string) error { return nil }

	reconciled := ""
	reconciler := &fakeReconciler{
		reconcileFn: func(ctx context.Context, id string) (reconcile.Result, error) {
			reconciled = id
			return reconcile.Result{EmployeeID: id}, nil
		},
	}

	svc := NewService(db, repo, reconciler, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Delete(context.Background(), advanceID.String())
	assert.NoError(t, err)
	assert.True(t, resp.Deleted)
	assert.Equal(t, employeeID.String(), reconciled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
