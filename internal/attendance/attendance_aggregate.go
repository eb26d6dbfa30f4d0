package attendance

// PeriodSummary is the paid-day breakdown for one employee over one month.
type PeriodSummary struct {
	PresentDays int     `json:"present_days"`
	HalfDays    int     `json:"half_days"`
	LeaveDays   int     `json:"leave_days"`
	HolidayDays int     `json:"holiday_days"`
	PaidDays    float64 `json:"paid_days"`
	LOPDays     float64 `json:"lop_days"`
}

// AggregatePeriod folds one employee's approved attendance records and the
// month's holiday count into a paid-day summary.
//
// A day with no record that is not a holiday is implicitly unpaid: it is only
// ever counted through the LOP subtraction. Half days weigh 0.5. The store
// does not enforce one record per date, so duplicates are collapsed here,
// first record wins.
func AggregatePeriod(records []Attendance, holidayCount, totalDaysInMonth int) PeriodSummary {
	summary := PeriodSummary{HolidayDays: holidayCount}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.ApprovalStatus != ApprovalApproved {
			continue
		}

		day := rec.AttendanceDate.Format("2006-01-02")
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}

		switch rec.Status {
		case StatusPresent:
			summary.PresentDays++
		case StatusHalfDay:
			summary.HalfDays++
		case StatusOnLeave:
			summary.LeaveDays++
		}
	}

	summary.PaidDays = float64(summary.PresentDays) +
		0.5*float64(summary.HalfDays) +
		float64(summary.LeaveDays) +
		float64(summary.HolidayDays)

	summary.LOPDays = float64(totalDaysInMonth) - summary.PaidDays
	if summary.LOPDays < 0 {
		summary.LOPDays = 0
		summary.PaidDays = float64(totalDaysInMonth)
	}

	return summary
}
