package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/holiday"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// statusTransitions is the only legal forward path; everything else is
// rejected. PAID is terminal.
var statusTransitions = map[string]string{
	StatusGenerated: StatusApproved,
	StatusApproved:  StatusPaid,
}

func CanTransition(from, to string) bool {
	return statusTransitions[from] == to
}

// Collaborator read interfaces. The concrete repositories of the employee,
// attendance and holiday packages satisfy these directly.
type EmployeeSource interface {
	FindAllActive(ctx context.Context) ([]employee.Employee, error)
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type AttendanceSource interface {
	ApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error)
}

type HolidaySource interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	Project(ctx context.Context, req ProjectionRequest) ([]PayrollResponse, error)
	BulkTransition(ctx context.Context, actorID string, req BulkTransitionRequest) (BulkTransitionResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, int64, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	RenderPayslip(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   EmployeeSource
	attendances AttendanceSource
	holidays    HolidaySource
	outbox      kafka.OutboxRepository
	audit       bootstrap.AuditLogger
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeSource,
	attendances AttendanceSource,
	holidays HolidaySource,
) Service {
	return NewServiceWithOutbox(db, repo, employees, attendances, holidays, nil, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees EmployeeSource,
	attendances AttendanceSource,
	holidays HolidaySource,
	outboxRepo kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		attendances: attendances,
		holidays:    holidays,
		outbox:      outboxRepo,
		audit:       audit,
		logger:      l,
	}
}

// Generate runs the monthly sweep over every active employee. Each employee
// is an isolated unit of work: one failure is reported in the result list and
// never blocks the rest. Records already PAID for the period are skipped so a
// re-run can never overwrite a closed month.
func (s *service) Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	if req.Month == nil || *req.Month < 0 || *req.Month > 11 {
		return GeneratePayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}
	month, year := *req.Month, req.Year

	for _, entries := range req.Adjustments {
		for _, adj := range entries {
			switch adj.Type {
			case AdjustmentBonus, AdjustmentArrear, AdjustmentDeduction:
			default:
				return GeneratePayrollResponse{}, payrollerrors.ErrInvalidAdjustment
			}
		}
	}

	start, end, totalDays := PeriodRange(month, year)

	holidayRows, err := s.holidays.FindInRange(ctx, start, end)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}
	holidayCount := len(holidayRows)

	employees, err := s.employees.FindAllActive(ctx)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	log := contextutil.GetLogger(ctx, s.logger)
	log.Info("payroll generation sweep started",
		zap.String("request_id", rid),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("employees", len(employees)),
		zap.Int("holidays", holidayCount),
	)

	resp := GeneratePayrollResponse{Month: month, Year: year}
	for _, emp := range employees {
		result := s.generateForEmployee(ctx, actorUUID, rid, emp, month, year, start, end, totalDays, holidayCount, req.Adjustments[emp.ID.String()])
		switch result.Status {
		case ResultGenerated:
			resp.Generated++
		case ResultSkipped:
			resp.Skipped++
		case ResultFailed:
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "PAYROLL_GENERATED",
			Message: "Payroll generation sweep finished",
			Meta: map[string]any{
				"month":     month,
				"year":      year,
				"generated": resp.Generated,
				"skipped":   resp.Skipped,
				"failed":    resp.Failed,
				"actor_id":  actorID,
			},
		})
	}

	return resp, nil
}

func (s *service) generateForEmployee(
	ctx context.Context,
	actorUUID uuid.UUID,
	rid string,
	emp employee.Employee,
	month, year int,
	start, end time.Time,
	totalDays, holidayCount int,
	adjustments []AdjustmentInput,
) EmployeeResult {
	result := EmployeeResult{
		EmployeeID:     emp.ID.String(),
		EmployeeNumber: emp.EmployeeNumber,
	}

	existing, err := s.repo.FindByPeriod(ctx, emp.ID.String(), month, year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.failResult(result, rid, "existing record check failed", err)
	}
	if existing != nil && existing.Status == StatusPaid {
		result.Status = ResultSkipped
		result.PayrollID = existing.ID.String()
		return result
	}

	records, err := s.attendances.ApprovedInRange(ctx, emp.ID.String(), start, end)
	if err != nil {
		return s.failResult(result, rid, "attendance read failed", err)
	}

	row := s.buildRecord(actorUUID, emp, month, year, totalDays, holidayCount, records, adjustments)
	if existing != nil {
		// regeneration reuses the row so the identifier stays stable
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.failResult(result, rid, "begin tx failed", err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, row); err != nil {
		return s.failResult(result, rid, "persist failed", err)
	}

	if s.outbox != nil {
		event := events.PayrollGeneratedEvent{
			EventType:   "payroll_generated",
			RequestID:   rid,
			PayrollID:   row.ID.String(),
			EmployeeID:  emp.ID.String(),
			Month:       month,
			Year:        year,
			NetPayable:  row.NetPayable,
			GeneratedBy: actorUUID.String(),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return s.failResult(result, rid, "marshal event failed", err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll",
			AggregateID:   row.ID.String(),
			EventType:     "payroll_generated",
			Topic:         events.PayrollGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return s.failResult(result, rid, "outbox enqueue failed", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.failResult(result, rid, "commit failed", err)
	}

	result.Status = ResultGenerated
	result.PayrollID = row.ID.String()
	return result
}

func (s *service) failResult(result EmployeeResult, rid, message string, err error) EmployeeResult {
	s.logger.Error("generate payroll for employee failed",
		zap.String("request_id", rid),
		zap.String("employee_id", result.EmployeeID),
		zap.String("stage", message),
		zap.Error(err),
	)
	result.Status = ResultFailed
	result.Error = message + ": " + err.Error()
	return result
}

func (s *service) buildRecord(
	actorUUID uuid.UUID,
	emp employee.Employee,
	month, year, totalDays, holidayCount int,
	records []attendance.Attendance,
	adjustments []AdjustmentInput,
) *Payroll {
	summary := attendance.AggregatePeriod(records, holidayCount, totalDays)
	snapshot := SnapshotStructure(emp.SalaryStructure)
	if snapshot == nil {
		s.logger.Warn("employee has no salary structure, statutory deductions skipped",
			zap.String("employee_id", emp.ID.String()),
		)
	}

	breakdown := ResolveBreakdown(snapshot, emp.BaseSalary, summary, totalDays, month)

	entries := make([]AdjustmentEntry, len(adjustments))
	for i, adj := range adjustments {
		entries[i] = AdjustmentEntry{Label: adj.Label, Amount: adj.Amount, Type: adj.Type}
	}
	ApplyAdjustments(&breakdown, entries)

	return &Payroll{
		ID:                 uuid.New(),
		EmployeeID:         emp.ID,
		PayMonth:           month,
		PayYear:            year,
		SalarySnapshot:     snapshot,
		AttendanceSnapshot: summary,
		Earnings:           breakdown.Earnings,
		Deductions:         breakdown.Deductions,
		Adjustments:        entries,
		Statutory:          breakdown.Statutory,
		TotalEarnings:      breakdown.TotalEarnings,
		TotalDeductions:    breakdown.TotalDeductions,
		NetPayable:         breakdown.NetPayable,
		Status:             StatusGenerated,
		GeneratedBy:        actorUUID,
		GeneratedAt:        time.Now().UTC(),
	}
}

// Project is the read-only twin of Generate. A persisted record is returned
// verbatim as the locked truth; otherwise the same pipeline runs in memory
// and the result is labeled DRAFT, a live estimate that is never stored.
func (s *service) Project(ctx context.Context, req ProjectionRequest) ([]PayrollResponse, error) {
	if req.Month == nil || *req.Month < 0 || *req.Month > 11 {
		return nil, payrollerrors.ErrInvalidPeriod
	}
	month, year := *req.Month, req.Year
	start, end, totalDays := PeriodRange(month, year)

	var employees []employee.Employee
	if req.EmployeeID != "" {
		emp, err := s.employees.FindByID(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, payrollerrors.ErrEmployeeNotFound
			}
			return nil, err
		}
		employees = []employee.Employee{*emp}
	} else {
		var err error
		employees, err = s.employees.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}
	}

	holidayRows, err := s.holidays.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	holidayCount := len(holidayRows)

	res := make([]PayrollResponse, 0, len(employees))
	for _, emp := range employees {
		persisted, err := s.repo.FindByPeriod(ctx, emp.ID.String(), month, year)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if persisted != nil {
			res = append(res, mapToResponse(*persisted))
			continue
		}

		records, err := s.attendances.ApprovedInRange(ctx, emp.ID.String(), start, end)
		if err != nil {
			return nil, err
		}

		draft := s.buildRecord(uuid.Nil, emp, month, year, totalDays, holidayCount, records, nil)
		draftResp := mapToResponse(*draft)
		draftResp.ID = ""
		draftResp.Status = StatusDraft
		draftResp.GeneratedBy = ""
		draftResp.GeneratedAt = nil
		res = append(res, draftResp)
	}

	return res, nil
}

// BulkTransition advances records through the status machine. Transitions
// are validated per record; invalid ones are reported, valid ones are stamped
// in a single update.
func (s *service) BulkTransition(ctx context.Context, actorID string, req BulkTransitionRequest) (BulkTransitionResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return BulkTransitionResponse{}, payrollerrors.ErrInvalidActorID
	}

	var target string
	switch req.Action {
	case "APPROVE":
		target = StatusApproved
	case "PAY":
		target = StatusPaid
		if req.PaymentDetails == nil {
			return BulkTransitionResponse{}, payrollerrors.ErrPaymentDetailsRequired
		}
	default:
		return BulkTransitionResponse{}, payrollerrors.ErrInvalidBulkAction
	}

	rows, err := s.repo.FindByIDs(ctx, req.IDs)
	if err != nil {
		return BulkTransitionResponse{}, err
	}
	byID := make(map[string]Payroll, len(rows))
	for _, row := range rows {
		byID[row.ID.String()] = row
	}

	resp := BulkTransitionResponse{Action: req.Action}
	var validIDs []string
	for _, id := range req.IDs {
		row, found := byID[id]
		if !found {
			resp.Failed++
			resp.Results = append(resp.Results, TransitionResult{
				PayrollID: id,
				Error:     payrollerrors.ErrPayrollNotFound.Message,
			})
			continue
		}
		if !CanTransition(row.Status, target) {
			resp.Failed++
			resp.Results = append(resp.Results, TransitionResult{
				PayrollID: id,
				Status:    row.Status,
				Error:     payrollerrors.ErrInvalidStatusTransition.Message,
			})
			continue
		}
		validIDs = append(validIDs, id)
		resp.Results = append(resp.Results, TransitionResult{PayrollID: id, Status: target})
	}

	if len(validIDs) > 0 {
		now := time.Now().UTC()
		fields := map[string]any{"status": target}
		switch target {
		case StatusApproved:
			fields["approved_by"] = actorUUID
			fields["approved_at"] = now
		case StatusPaid:
			details := PaymentDetails{
				Method:    req.PaymentDetails.Method,
				Reference: req.PaymentDetails.Reference,
				Notes:     req.PaymentDetails.Notes,
				PaidAt:    now,
			}
			payload, err := json.Marshal(details)
			if err != nil {
				return BulkTransitionResponse{}, err
			}
			fields["payment_details"] = string(payload)
		}

		if err := s.repo.BulkUpdateStatus(ctx, validIDs, fields); err != nil {
			return BulkTransitionResponse{}, err
		}
		resp.Updated = len(validIDs)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "PAYROLL_BULK_" + req.Action,
			Message: "Payroll bulk status transition",
			Meta: map[string]any{
				"updated":  resp.Updated,
				"failed":   resp.Failed,
				"actor_id": actorID,
			},
		})
	}

	return resp, nil
}

func (s *service) GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	res := make([]PayrollResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}

	return mapToResponse(*row), nil
}

// RenderPayslip produces the PDF artifact for a persisted record.
func (s *service) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return buildSimplePayslipPDF(payslipLines(resp))
}

func mapToResponse(row Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:             row.ID.String(),
		EmployeeID:     row.EmployeeID.String(),
		Month:          row.PayMonth,
		Year:           row.PayYear,
		Status:         row.Status,
		SalarySnapshot: row.SalarySnapshot,
		AttendanceSnapshot: AttendanceSnapshotPayload{
			PresentDays: row.AttendanceSnapshot.PresentDays,
			HalfDays:    row.AttendanceSnapshot.HalfDays,
			LeaveDays:   row.AttendanceSnapshot.LeaveDays,
			HolidayDays: row.AttendanceSnapshot.HolidayDays,
			PaidDays:    row.AttendanceSnapshot.PaidDays,
			LOPDays:     row.AttendanceSnapshot.LOPDays,
		},
		Earnings:        mapLines(row.Earnings),
		Deductions:      mapLines(row.Deductions),
		Adjustments:     row.Adjustments,
		Statutory:       StatutoryResponse(row.Statutory),
		TotalEarnings:   row.TotalEarnings,
		TotalDeductions: row.TotalDeductions,
		NetPayable:      row.NetPayable,
		PaymentDetails:  row.PaymentDetails,
	}

	if row.GeneratedBy != uuid.Nil {
		resp.GeneratedBy = row.GeneratedBy.String()
		v := row.GeneratedAt.Format(time.RFC3339)
		resp.GeneratedAt = &v
	}
	if row.ApprovedBy != nil {
		v := row.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if row.ApprovedAt != nil {
		v := row.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}

	return resp
}

func mapLines(lines []PayLine) []PayLineResponse {
	res := make([]PayLineResponse, len(lines))
	for i, line := range lines {
		res[i] = PayLineResponse(line)
	}
	return res
}
