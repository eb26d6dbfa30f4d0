package attendance

type CheckInRequest struct {
	Status string  `json:"status" binding:"omitempty,oneof=PRESENT HALF_DAY ABSENT ON_LEAVE"`
	Date   string  `json:"date"`
	Notes  *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        *string `json:"clock_in,omitempty"`
	ClockOut       *string `json:"clock_out,omitempty"`
	Status         string  `json:"status"`
	ApprovalStatus string  `json:"approval_status"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}
