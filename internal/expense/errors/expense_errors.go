package expenseerrors

import (
	"net/http"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense not found",
		http.StatusNotFound,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced project does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
