package importer

import (
	"net/http"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
)

type EntityType string

const (
	EntityEmployees EntityType = "employees"
	EntityPayrolls  EntityType = "payrolls"
	EntityAdvances  EntityType = "advances"
	EntityExpenses  EntityType = "expenses"
)

func ParseEntityType(raw string) (EntityType, error) {
	switch EntityType(raw) {
	case EntityEmployees, EntityPayrolls, EntityAdvances, EntityExpenses:
		return EntityType(raw), nil
	}
	return "", ErrUnknownEntity
}

// Row is one record keyed by normalized header name.
type Row map[string]string

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Report summarizes an import run. Row failures never abort the run; they
// are collected here so the caller can fix and re-upload just those rows.
type Report struct {
	Processed int        `json:"processed"`
	Succeeded int        `json:"succeeded"`
	Skipped   int        `json:"skipped"`
	Errors    []RowError `json:"errors,omitempty"`
}

func (r *Report) addError(row int, message string) {
	r.Skipped++
	r.Errors = append(r.Errors, RowError{Row: row, Message: message})
}

var (
	ErrUnknownEntity = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown import entity, expected employees, payrolls, advances or expenses",
		http.StatusBadRequest,
	)
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput,
		"Uploaded file contains no rows",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported file format, expected .xlsx, .xls or .csv",
		http.StatusBadRequest,
	)
)
