package payroll

type AdjustmentInput struct {
	Label  string `json:"label" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=BONUS ARREAR DEDUCTION"`
}

// GeneratePayrollRequest drives a bulk generation sweep. Month is zero-based
// (0 = January), hence the pointer: 0 is a valid value.
type GeneratePayrollRequest struct {
	Month       *int                         `json:"month" binding:"required,min=0,max=11"`
	Year        int                          `json:"year" binding:"required,min=2000,max=2200"`
	Adjustments map[string][]AdjustmentInput `json:"adjustments"`
}

const (
	ResultGenerated = "GENERATED"
	ResultSkipped   = "SKIPPED"
	ResultFailed    = "FAILED"
)

// EmployeeResult reports one employee's outcome of a bulk sweep; failures are
// isolated per employee and never abort the rest of the run.
type EmployeeResult struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	Status         string `json:"status"`
	PayrollID      string `json:"payroll_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

type GeneratePayrollResponse struct {
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Generated int              `json:"generated"`
	Skipped   int              `json:"skipped"`
	Failed    int              `json:"failed"`
	Results   []EmployeeResult `json:"results"`
}

type PaymentDetailsInput struct {
	Method    string `json:"method" binding:"required"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

type BulkTransitionRequest struct {
	IDs            []string             `json:"ids" binding:"required,min=1,dive,uuid"`
	Action         string               `json:"action" binding:"required,oneof=APPROVE PAY"`
	PaymentDetails *PaymentDetailsInput `json:"payment_details"`
}

type TransitionResult struct {
	PayrollID string `json:"payroll_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type BulkTransitionResponse struct {
	Action  string             `json:"action"`
	Updated int                `json:"updated"`
	Failed  int                `json:"failed"`
	Results []TransitionResult `json:"results"`
}

type GetPayrollsFilterRequest struct {
	Month  *int   `form:"month" binding:"omitempty,min=0,max=11"`
	Year   *int   `form:"year" binding:"omitempty,min=2000,max=2200"`
	Status string `form:"status" binding:"omitempty,oneof=GENERATED APPROVED PAID"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type ProjectionRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Month      *int   `form:"month" binding:"required,min=0,max=11"`
	Year       int    `form:"year" binding:"required,min=2000,max=2200"`
}

type PayLineResponse struct {
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	IsArrear bool   `json:"is_arrear,omitempty"`
}

type StatutoryResponse struct {
	PFEmployee  int64 `json:"pf_employee"`
	PFEmployer  int64 `json:"pf_employer"`
	ESIEmployee int64 `json:"esi_employee"`
	ESIEmployer int64 `json:"esi_employer"`
	PT          int64 `json:"pt"`
	TDS         int64 `json:"tds"`
}

type PayrollResponse struct {
	ID                 string                    `json:"id,omitempty"`
	EmployeeID         string                    `json:"employee_id"`
	Month              int                       `json:"month"`
	Year               int                       `json:"year"`
	Status             string                    `json:"status"`
	SalarySnapshot     *StructureSnapshot        `json:"salary_snapshot,omitempty"`
	AttendanceSnapshot AttendanceSnapshotPayload `json:"attendance_snapshot"`
	Earnings           []PayLineResponse         `json:"earnings"`
	Deductions         []PayLineResponse         `json:"deductions"`
	Adjustments        []AdjustmentEntry         `json:"adjustments,omitempty"`
	Statutory          StatutoryResponse         `json:"statutory"`
	TotalEarnings      int64                     `json:"total_earnings"`
	TotalDeductions    int64                     `json:"total_deductions"`
	NetPayable         int64                     `json:"net_payable"`
	GeneratedBy        string                    `json:"generated_by,omitempty"`
	GeneratedAt        *string                   `json:"generated_at,omitempty"`
	ApprovedBy         *string                   `json:"approved_by,omitempty"`
	ApprovedAt         *string                   `json:"approved_at,omitempty"`
	PaymentDetails     *PaymentDetails           `json:"payment_details,omitempty"`
}

type AttendanceSnapshotPayload struct {
	PresentDays int     `json:"present_days"`
	HalfDays    int     `json:"half_days"`
	LeaveDays   int     `json:"leave_days"`
	HolidayDays int     `json:"holiday_days"`
	PaidDays    float64 `json:"paid_days"`
	LOPDays     float64 `json:"lop_days"`
}
