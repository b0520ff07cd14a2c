package reconcileerrors

import (
	"net/http"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
)

var (
	// ErrReconcilePending signals that the triggering write committed but
	// the payroll recalculation did not; a retry task has been queued.
	ErrReconcilePending = apperror.New(
		apperror.CodeReconcilePending,
		"Advance saved, payroll reconciliation queued for retry",
		http.StatusOK,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
