package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/encoding"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ReadSpreadsheet loads an uploaded file into header-keyed rows. The format
// follows the file extension; CSV goes through encoding detection first
// because exports from Arabic-locale Excel are rarely plain UTF-8.
func ReadSpreadsheet(r io.Reader, filename string) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var cells [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		cells, err = readXLSX(data)
	case ".xls":
		cells, err = readXLS(data)
	case ".csv", ".txt":
		cells, err = readCSV(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	return mapRows(cells)
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyFile
	}

	return f.GetRows(sheetName)
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrEmptyFile
	}

	return workbook.ReadAllCells(100000), nil
}

func readCSV(data []byte) ([][]string, error) {
	utf8Reader, err := encoding.NewUTF8Reader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(utf8Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return reader.ReadAll()
}

// mapRows treats the first non-empty line as the header and keys every
// following line by it. Blank lines are dropped.
func mapRows(cells [][]string) ([]Row, error) {
	start := -1
	for i, line := range cells {
		if !isBlank(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(cells[start]))
	for i, h := range cells[start] {
		headers[i] = normalizeHeader(h)
	}

	var rows []Row
	for _, line := range cells[start+1:] {
		if isBlank(line) {
			continue
		}

		row := Row{}
		for i, value := range line {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			row[headers[i]] = strings.TrimSpace(value)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "_")
	return h
}

func isBlank(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
