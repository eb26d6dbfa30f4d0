package statutory_test

import (
	"testing"

	"go-hrms/internal/statutory"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePF_Ceiling(t *testing.T) {
	// anything above the ceiling clamps down to it
	assert.Equal(t, int64(1800), statutory.CalculatePF(15000, true))
	assert.Equal(t, statutory.CalculatePF(15000, true), statutory.CalculatePF(20000, true))

	// uncapped follows the raw wage
	assert.Equal(t, int64(2400), statutory.CalculatePF(20000, false))
}

func TestCalculatePF_BelowCeiling(t *testing.T) {
	assert.Equal(t, int64(1200), statutory.CalculatePF(10000, true))
	assert.Equal(t, int64(0), statutory.CalculatePF(0, true))
}

func TestCalculateEmployerPF(t *testing.T) {
	assert.Equal(t, int64(1800), statutory.CalculateEmployerPF(20000, true))
	assert.Equal(t, int64(1440), statutory.CalculateEmployerPF(12000, true))
}

func TestCalculateESI_Cliff(t *testing.T) {
	at := statutory.CalculateESI(21000)
	assert.Greater(t, at.Employee, int64(0))
	assert.Greater(t, at.Employer, int64(0))

	above := statutory.CalculateESI(21001)
	assert.Equal(t, int64(0), above.Employee)
	assert.Equal(t, int64(0), above.Employer)
}

func TestCalculateESI_RoundsUp(t *testing.T) {
	// 10000 * 0.0075 = 75 exactly; 10001 * 0.0075 = 75.0075 -> 76
	assert.Equal(t, int64(75), statutory.CalculateESI(10000).Employee)
	assert.Equal(t, int64(76), statutory.CalculateESI(10001).Employee)
}

func TestCalculatePT_Slabs(t *testing.T) {
	tests := []struct {
		name       string
		gross      int64
		monthIndex int
		want       int64
	}{
		{"below first slab", 7500, 5, 0},
		{"second slab", 9000, 5, 175},
		{"top slab regular month", 50000, 0, 200},
		{"top slab peak month", 50000, 1, 300},
		{"boundary 10000", 10000, 1, 175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statutory.CalculatePT(tt.gross, tt.monthIndex))
		})
	}
}

func TestProjectTax_FullRebate(t *testing.T) {
	assert.Equal(t, int64(0), statutory.ProjectTax(700000, statutory.StandardExemption, statutory.RegimeNew))
	assert.Equal(t, int64(0), statutory.ProjectTax(400000, statutory.StandardExemption, statutory.RegimeNew))
}

func TestProjectTax_NewRegimeSlabs(t *testing.T) {
	// taxable = 1000000 - 75000 = 925000
	// 300k..600k @5% = 15000, 600k..900k @10% = 30000, 900k..925k @15% = 3750
	// base 48750, +4% cess = 50700
	assert.Equal(t, int64(50700), statutory.ProjectTax(1000000, statutory.StandardExemption, statutory.RegimeNew))
}

func TestProjectTax_OldRegimePlaceholder(t *testing.T) {
	// flat 20% of taxable
	assert.Equal(t, int64(185000), statutory.ProjectTax(1000000, statutory.StandardExemption, statutory.RegimeOld))
}

func TestProjectTax_ExemptionsAboveIncome(t *testing.T) {
	assert.Equal(t, int64(0), statutory.ProjectTax(1, 1000000000, statutory.RegimeOld))
}
