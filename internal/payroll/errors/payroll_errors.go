package payrollerrors

import (
	"net/http"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced employee does not exist",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced project does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month, expected YYYY-MM or YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicatePeriod = apperror.New(
		apperror.CodeConflict,
		"A payroll record already exists for this employee and month",
		http.StatusConflict,
	)
)
