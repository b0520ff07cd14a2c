package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocumentText_Advances(t *testing.T) {
	text := "EMP-000101 500 fuel advance\nEMP-000102 250 groceries\n\nshort\n"

	rows, rejected := ParseDocumentText(text, EntityAdvances)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, "EMP-000101", rows[0]["employee_code"])
	assert.Equal(t, "500", rows[0]["amount"])
	assert.Equal(t, "fuel advance", rows[0]["note"])
	assert.NotEmpty(t, rows[0]["date"])
}

func TestParseDocumentText_Employees(t *testing.T) {
	text := "Ahmed Hassan EMP-000201 Electrician\nOmar Ali EMP-000202 Plumber\ntoo short line\n"

	rows, rejected := ParseDocumentText(text, EntityEmployees)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, "Ahmed Hassan", rows[0]["name"])
	assert.Equal(t, "EMP-000201", rows[0]["employee_code"])
	assert.Equal(t, "Electrician", rows[0]["role"])
}

func TestParseDocumentText_PayrollBadNumberBecomesZero(t *testing.T) {
	text := "EMP-000301 abc extra\n"

	rows, rejected := ParseDocumentText(text, EntityPayrolls)
	assert.Len(t, rows, 1)
	assert.Equal(t, 0, rejected)
	assert.Equal(t, "0", rows[0]["hours_worked"])
}

func TestParseDocumentText_CountsUnreadableLines(t *testing.T) {
	text := "EMP-000101 500 fuel\nscribble\nEMP-000102\n\n   \n"

	rows, rejected := ParseDocumentText(text, EntityAdvances)
	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rejected)
}

func TestParseDocumentText_BlankLinesAreNotRejects(t *testing.T) {
	rows, rejected := ParseDocumentText("\n\n   \n", EntityExpenses)
	assert.Empty(t, rows)
	assert.Equal(t, 0, rejected)
}
