package employeeerrors

import (
	"net/http"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrIqamaTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with the same iqama number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned project does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfJoin = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_of_join format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
