package exporter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"

	"go.uber.org/zap"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Column pairs a row key with the header shown in the exported file.
// Format, when set, rewrites the cell value before rendering.
type Column struct {
	Key    string
	Header string
	Format func(string) string
}

func (c Column) cell(row map[string]string) string {
	v := row[c.Key]
	if c.Format != nil {
		return c.Format(v)
	}
	return v
}

// Dataset is a fully materialized table ready for rendering.
type Dataset struct {
	Name    string
	Columns []Column
	Rows    []map[string]string
}

// SourceFunc materializes a dataset. Each entity module contributes one at
// wiring time.
type SourceFunc func(ctx context.Context) (Dataset, error)

// File is a rendered export ready to be written to the response.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

var (
	ErrUnknownEntity = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown export entity",
		http.StatusBadRequest,
	)
	ErrUnknownFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown export format, expected xlsx or pdf",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=exporter.go -destination=mock/exporter_mock.go -package=mock
type Service interface {
	RegisterSource(entity string, source SourceFunc)
	Export(ctx context.Context, entity string, format Format) (File, error)
}

type service struct {
	sources map[string]SourceFunc
	logger  *zap.Logger
}

func NewService() Service {
	return &service{
		sources: make(map[string]SourceFunc),
		logger:  zap.L().Named("exporter.service"),
	}
}

func (s *service) RegisterSource(entity string, source SourceFunc) {
	s.sources[entity] = source
}

func (s *service) Export(ctx context.Context, entity string, format Format) (File, error) {
	source, ok := s.sources[entity]
	if !ok {
		return File{}, ErrUnknownEntity
	}

	dataset, err := source(ctx)
	if err != nil {
		return File{}, err
	}

	stamp := time.Now().UTC().Format("2006-01-02")

	switch format {
	case FormatXLSX:
		data, err := buildXLSX(dataset)
		if err != nil {
			return File{}, err
		}
		return File{
			Name:        fmt.Sprintf("%s-%s.xlsx", entity, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := buildTablePDF(dataset)
		if err != nil {
			return File{}, err
		}
		return File{
			Name:        fmt.Sprintf("%s-%s.pdf", entity, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}

	return File{}, ErrUnknownFormat
}
