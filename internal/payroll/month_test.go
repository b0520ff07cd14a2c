package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseMonth("2025-03")
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ParseMonth("2025-03-17")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseMonth_Invalid(t *testing.T) {
	_, err := ParseMonth("March 2025")
	assert.Error(t, err)

	_, err = ParseMonth("")
	assert.Error(t, err)
}
