package payroll

import (
	"math"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/statutory"
)

// CalculateProRata scales a monthly amount down to a paid-day count.
// totalDaysInMonth of zero cannot occur for a real calendar month; returning 0
// is a guard, not an operating mode.
func CalculateProRata(monthlyAmount int64, totalDaysInMonth int, paidDays float64) int64 {
	if totalDaysInMonth == 0 {
		return 0
	}
	return int64(math.Round(float64(monthlyAmount) / float64(totalDaysInMonth) * paidDays))
}

// PeriodRange derives the calendar bounds of a zero-based month. Keeping the
// zero-based convention end to end is load bearing: an off-by-one here shifts
// every payroll period silently.
func PeriodRange(month, year int) (start, end time.Time, totalDays int) {
	start = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, end.Day()
}

// Breakdown is the computed pay result before persistence.
type Breakdown struct {
	Earnings        []PayLine
	Deductions      []PayLine
	Statutory       StatutoryBreakdown
	TotalEarnings   int64
	TotalDeductions int64
	NetPayable      int64
}

// SnapshotStructure freezes a salary structure for storage on the record.
func SnapshotStructure(s *salarystructure.SalaryStructure) *StructureSnapshot {
	if s == nil {
		return nil
	}
	snap := &StructureSnapshot{
		Name:       s.Name,
		CTCAnnual:  s.CTCAnnual,
		Components: make([]ComponentSnapshot, len(s.Components)),
	}
	for i, comp := range s.Components {
		snap.Components[i] = ComponentSnapshot{
			Label:     comp.Label,
			Type:      comp.Type,
			ValueType: comp.ValueType,
			Value:     comp.Value,
		}
	}
	return snap
}

// monthlyValue resolves a component to its full monthly amount. Percentage
// components resolve against CTC/12, fixed components are literal.
func monthlyValue(comp ComponentSnapshot, ctcAnnual int64) int64 {
	if comp.ValueType == salarystructure.ValuePercentage {
		return int64(math.Round(float64(ctcAnnual) / 12 * comp.Value / 100))
	}
	return int64(math.Round(comp.Value))
}

// ResolveBreakdown turns a snapshotted structure, the attendance summary and
// the calendar into earning and deduction lines. monthIndex is zero-based.
//
// Without a structure the base salary becomes a single pro-rated earning line
// and no statutory deductions are computed. That mirrors the historical
// behavior and is a known gap pending product clarification; callers log it.
func ResolveBreakdown(
	snapshot *StructureSnapshot,
	baseSalary int64,
	summary attendance.PeriodSummary,
	totalDaysInMonth int,
	monthIndex int,
) Breakdown {
	var b Breakdown

	if snapshot == nil || len(snapshot.Components) == 0 {
		b.Earnings = append(b.Earnings, PayLine{
			Label:    "Base Salary",
			Amount:   CalculateProRata(baseSalary, totalDaysInMonth, summary.PaidDays),
			Category: CategoryEarning,
		})
		recomputeTotals(&b)
		return b
	}

	var grossEarnings int64
	var basicMonthly int64
	for _, comp := range snapshot.Components {
		if comp.Type != salarystructure.ComponentEarning {
			continue
		}
		amount := CalculateProRata(monthlyValue(comp, snapshot.CTCAnnual), totalDaysInMonth, summary.PaidDays)
		grossEarnings += amount
		b.Earnings = append(b.Earnings, PayLine{
			Label:    comp.Label,
			Amount:   amount,
			Category: CategoryEarning,
		})
		if strings.EqualFold(comp.Label, salarystructure.BasicLabel) {
			basicMonthly = amount
		}
	}

	// Statutory charges run off the pro-rated wages actually earned: PF off
	// pro-rated Basic (zero when the structure has no Basic component), ESI
	// and PT off pro-rated gross.
	b.Statutory.PFEmployee = statutory.CalculatePF(basicMonthly, true)
	b.Statutory.PFEmployer = statutory.CalculateEmployerPF(basicMonthly, true)
	esi := statutory.CalculateESI(grossEarnings)
	b.Statutory.ESIEmployee = esi.Employee
	b.Statutory.ESIEmployer = esi.Employer
	b.Statutory.PT = statutory.CalculatePT(grossEarnings, monthIndex)
	b.Statutory.TDS = int64(math.Round(float64(statutory.ProjectTax(grossEarnings*12, statutory.StandardExemption, statutory.RegimeNew)) / 12))

	b.Deductions = append(b.Deductions, PayLine{
		Label:    "Provident Fund",
		Amount:   b.Statutory.PFEmployee,
		Category: CategoryStatutory,
	})
	// zero ESI means the scheme does not apply; keep the noise off payslips
	if b.Statutory.ESIEmployee > 0 {
		b.Deductions = append(b.Deductions, PayLine{
			Label:    "ESI",
			Amount:   b.Statutory.ESIEmployee,
			Category: CategoryStatutory,
		})
	}
	b.Deductions = append(b.Deductions, PayLine{
		Label:    "Professional Tax",
		Amount:   b.Statutory.PT,
		Category: CategoryStatutory,
	})

	for _, comp := range snapshot.Components {
		if comp.Type != salarystructure.ComponentDeduction {
			continue
		}
		var amount int64
		if comp.ValueType == salarystructure.ValuePercentage {
			amount = int64(math.Round(float64(grossEarnings) * comp.Value / 100))
		} else {
			amount = int64(math.Round(comp.Value))
		}
		b.Deductions = append(b.Deductions, PayLine{
			Label:    comp.Label,
			Amount:   amount,
			Category: CategoryCustom,
		})
	}

	recomputeTotals(&b)
	return b
}

// ApplyAdjustments folds ad-hoc generation-time entries into the breakdown.
// Bonus and arrear both land on the earnings side and affect totals
// identically; the arrear flag is display metadata only.
func ApplyAdjustments(b *Breakdown, adjustments []AdjustmentEntry) {
	for _, adj := range adjustments {
		switch adj.Type {
		case AdjustmentDeduction:
			b.Deductions = append(b.Deductions, PayLine{
				Label:    adj.Label,
				Amount:   adj.Amount,
				Category: CategoryAdjustment,
			})
		case AdjustmentBonus, AdjustmentArrear:
			b.Earnings = append(b.Earnings, PayLine{
				Label:    adj.Label,
				Amount:   adj.Amount,
				Category: CategoryAdjustment,
				IsArrear: adj.Type == AdjustmentArrear,
			})
		}
	}
	recomputeTotals(b)
}

// recomputeTotals derives every total from the line arrays; totals are never
// edited independently of the lines.
func recomputeTotals(b *Breakdown) {
	var earnings, deductions int64
	for _, line := range b.Earnings {
		earnings += line.Amount
	}
	for _, line := range b.Deductions {
		deductions += line.Amount
	}
	b.TotalEarnings = earnings
	b.TotalDeductions = deductions
	b.NetPayable = earnings - deductions
}
