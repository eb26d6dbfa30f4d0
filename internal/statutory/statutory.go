// Package statutory holds the statutory contribution and tax rate tables
// and the pure functions that apply them to a monthly wage figure.
//
// The formulas are a simplified reference implementation and are not a
// compliance statement for any jurisdiction.
package statutory

import "math"

const (
	PFWageCeiling   int64 = 15000
	PFEmployeeRate        = 0.12
	PFEmployerRate        = 0.12 // dipisah dari rate karyawan, bisa berubah sendiri
	ESIWageCeiling  int64 = 21000
	ESIEmployeeRate       = 0.0075
	ESIEmployerRate       = 0.0325

	TaxRebateLimit    int64 = 700000
	StandardExemption int64 = 75000
	CessRate                = 0.04

	// PTPeakMonth is the zero-based calendar month (1 = February) in which
	// the top professional-tax slab charges the higher amount.
	PTPeakMonth = 1
)

type TaxRegime string

const (
	RegimeNew TaxRegime = "NEW"
	RegimeOld TaxRegime = "OLD"
)

// ESIContribution is the employee/employer split of a monthly ESI charge.
type ESIContribution struct {
	Employee int64
	Employer int64
}

// CalculatePF returns the employee provident-fund contribution for a monthly
// basic wage. With useCeiling the wage is clamped to PFWageCeiling first.
func CalculatePF(basicMonthly int64, useCeiling bool) int64 {
	wage := basicMonthly
	if useCeiling && wage > PFWageCeiling {
		wage = PFWageCeiling
	}
	return int64(math.Round(float64(wage) * PFEmployeeRate))
}

// CalculateEmployerPF mirrors CalculatePF with the employer rate.
func CalculateEmployerPF(basicMonthly int64, useCeiling bool) int64 {
	wage := basicMonthly
	if useCeiling && wage > PFWageCeiling {
		wage = PFWageCeiling
	}
	return int64(math.Round(float64(wage) * PFEmployerRate))
}

// CalculateESI returns both ESI contributions for a monthly gross wage.
// The scheme does not apply at all above the wage ceiling. Contributions are
// rounded up, statutory convention never under-withholds.
func CalculateESI(grossMonthly int64) ESIContribution {
	if grossMonthly > ESIWageCeiling {
		return ESIContribution{}
	}
	return ESIContribution{
		Employee: int64(math.Ceil(float64(grossMonthly) * ESIEmployeeRate)),
		Employer: int64(math.Ceil(float64(grossMonthly) * ESIEmployerRate)),
	}
}

// CalculatePT returns the professional-tax slab amount for a monthly gross
// wage. monthIndex is zero-based (0 = January); the top slab charges 300 in
// the peak month and 200 otherwise.
func CalculatePT(grossMonthly int64, monthIndex int) int64 {
	switch {
	case grossMonthly <= 7500:
		return 0
	case grossMonthly <= 10000:
		return 175
	case monthIndex == PTPeakMonth:
		return 300
	default:
		return 200
	}
}

// taxSlab is a marginal band applied to taxable income above Floor.
type taxSlab struct {
	Floor int64
	Rate  float64
}

var newRegimeSlabs = []taxSlab{
	{Floor: 1500000, Rate: 0.30},
	{Floor: 1200000, Rate: 0.20},
	{Floor: 900000, Rate: 0.15},
	{Floor: 600000, Rate: 0.10},
	{Floor: 300000, Rate: 0.05},
}

// ProjectTax projects the annual income tax for an annual income under the
// given regime. exemptions is subtracted before the slabs are applied; a full
// rebate applies when annual income does not exceed TaxRebateLimit.
func ProjectTax(annualIncome, exemptions int64, regime TaxRegime) int64 {
	taxable := annualIncome - exemptions
	if taxable < 0 {
		taxable = 0
	}

	if regime == RegimeOld {
		// placeholder flat rate, the old regime is not modeled in detail
		return int64(math.Round(float64(taxable) * 0.20))
	}

	if annualIncome <= TaxRebateLimit {
		return 0
	}

	var tax float64
	remaining := taxable
	for _, slab := range newRegimeSlabs {
		if remaining > slab.Floor {
			tax += float64(remaining-slab.Floor) * slab.Rate
			remaining = slab.Floor
		}
	}

	tax += tax * CessRate
	return int64(math.Round(tax))
}
