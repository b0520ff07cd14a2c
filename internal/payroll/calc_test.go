package payroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrossPay(t *testing.T) {
	assert.Equal(t, 3000.0, GrossPay(120, 25))
	assert.Equal(t, 4000.0, GrossPay(160, 25))
	assert.Equal(t, 0.0, GrossPay(0, 25))
	assert.Equal(t, 0.0, GrossPay(160, 0))
}

func TestGrossPay_SanitizesBadInputs(t *testing.T) {
	assert.Equal(t, 0.0, GrossPay(math.NaN(), 25))
	assert.Equal(t, 0.0, GrossPay(160, math.Inf(1)))
	assert.Equal(t, 0.0, GrossPay(math.Inf(-1), math.NaN()))
	assert.Equal(t, 0.0, GrossPay(-40, 25))
	assert.Equal(t, 0.0, GrossPay(40, -25))
}

func TestNetPay(t *testing.T) {
	assert.Equal(t, 2500.0, NetPay(3000, 500))
	assert.Equal(t, 1800.0, NetPay(3000, 1200))
	assert.Equal(t, 3000.0, NetPay(3000, 0))
}

func TestNetPay_NotClampedWhenAdvancesExceedGross(t *testing.T) {
	assert.Equal(t, -200.0, NetPay(800, 1000))
	assert.Equal(t, -1000.0, NetPay(0, 1000))
}

func TestNetPay_SanitizesBadInputs(t *testing.T) {
	assert.Equal(t, 3000.0, NetPay(3000, math.NaN()))
	assert.Equal(t, -500.0, NetPay(math.Inf(1), 500))
	assert.Equal(t, 3000.0, NetPay(3000, -500))
}
