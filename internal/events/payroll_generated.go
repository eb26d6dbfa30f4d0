package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

// PayrollGeneratedEvent is emitted per computed record during a generation
// sweep; the payslip consumer renders an artifact from it.
type PayrollGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	NetPayable  int64     `json:"net_payable"`
	GeneratedBy string    `json:"generated_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
