package payroll

import (
	"time"

	"go-hrms/internal/attendance"

	"github.com/google/uuid"
)

const (
	// StatusDraft is a live projection only, never persisted.
	StatusDraft     = "DRAFT"
	StatusGenerated = "GENERATED"
	StatusApproved  = "APPROVED"
	StatusPaid      = "PAID"
)

// Line categories.
const (
	CategoryEarning    = "EARNING"
	CategoryStatutory  = "STATUTORY"
	CategoryCustom     = "CUSTOM"
	CategoryAdjustment = "ADJUSTMENT"
)

// Adjustment entry types.
const (
	AdjustmentBonus     = "BONUS"
	AdjustmentArrear    = "ARREAR"
	AdjustmentDeduction = "DEDUCTION"
)

// PayLine is a single labeled amount on either side of the payslip.
type PayLine struct {
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	IsArrear bool   `json:"is_arrear,omitempty"`
}

// StatutoryBreakdown carries every statutory figure of a period. TDS is a
// projection only and is never applied as a deduction line.
type StatutoryBreakdown struct {
	PFEmployee  int64 `json:"pf_employee"`
	PFEmployer  int64 `json:"pf_employer"`
	ESIEmployee int64 `json:"esi_employee"`
	ESIEmployer int64 `json:"esi_employer"`
	PT          int64 `json:"pt"`
	TDS         int64 `json:"tds"`
}

// ComponentSnapshot and StructureSnapshot freeze the salary structure used at
// generation time so later edits never change a closed month.
type ComponentSnapshot struct {
	Label     string  `json:"label"`
	Type      string  `json:"type"`
	ValueType string  `json:"value_type"`
	Value     float64 `json:"value"`
}

type StructureSnapshot struct {
	Name       string              `json:"name"`
	CTCAnnual  int64               `json:"ctc_annual"`
	Components []ComponentSnapshot `json:"components"`
}

type AdjustmentEntry struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

type PaymentDetails struct {
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	PaidAt    time.Time `json:"paid_at"`
}

// Payroll is one persisted pay computation, unique per employee and period.
// PayMonth is zero-based (0 = January) across the whole engine.
type Payroll struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_employee_period"`
	PayMonth   int       `gorm:"column:pay_month;type:int;not null;uniqueIndex:uq_employee_period"`
	PayYear    int       `gorm:"column:pay_year;type:int;not null;uniqueIndex:uq_employee_period"`

	SalarySnapshot     *StructureSnapshot       `gorm:"column:salary_snapshot;type:jsonb;serializer:json"`
	AttendanceSnapshot attendance.PeriodSummary `gorm:"column:attendance_snapshot;type:jsonb;serializer:json"`

	Earnings    []PayLine         `gorm:"column:earnings;type:jsonb;serializer:json"`
	Deductions  []PayLine         `gorm:"column:deductions;type:jsonb;serializer:json"`
	Adjustments []AdjustmentEntry `gorm:"column:adjustments;type:jsonb;serializer:json"`

	Statutory StatutoryBreakdown `gorm:"column:statutory;type:jsonb;serializer:json"`

	// Financials dalam satuan mata uang utuh; selalu dihitung ulang dari lines.
	TotalEarnings   int64 `gorm:"column:total_earnings;type:bigint;not null;default:0"`
	TotalDeductions int64 `gorm:"column:total_deductions;type:bigint;not null;default:0"`
	NetPayable      int64 `gorm:"column:net_payable;type:bigint;not null;default:0"`

	Status string `gorm:"column:status;type:varchar(20);not null;default:'GENERATED';index"`

	GeneratedBy    uuid.UUID       `gorm:"column:generated_by;type:uuid;not null"`
	GeneratedAt    time.Time       `gorm:"column:generated_at;type:timestamptz;not null"`
	ApprovedBy     *uuid.UUID      `gorm:"column:approved_by;type:uuid"`
	ApprovedAt     *time.Time      `gorm:"column:approved_at;type:timestamptz"`
	PaymentDetails *PaymentDetails `gorm:"column:payment_details;type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
