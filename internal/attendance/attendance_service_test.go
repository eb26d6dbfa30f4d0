package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	withTxFn                func(tx *sql.Tx) attendance.Repository
	createFn                func(ctx context.Context, row *attendance.Attendance) error
	updateFn                func(ctx context.Context, row *attendance.Attendance) error
	findByIDFn              func(ctx context.Context, id string) (*attendance.Attendance, error)
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error)
	findAllFn               func(ctx context.Context) ([]attendance.Attendance, error)
	findAllByEmployeeFn     func(ctx context.Context, employeeID string) ([]attendance.Attendance, error)
	approvedInRangeFn       func(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, row *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, row *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) ApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if f.approvedInRangeFn != nil {
		return f.approvedInRangeFn(ctx, employeeID, start, end)
	}
	return nil, nil
}

type attendanceServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *fakeAttendanceRepository
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(db, repo)

	return &attendanceServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var stored *attendance.Attendance
	deps.repo.createFn = func(ctx context.Context, row *attendance.Attendance) error {
		stored = row
		return nil
	}

	resp, err := deps.service.CheckIn(ctx, employeeID, attendance.CheckInRequest{Date: "2026-04-06"})

	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, attendance.ApprovalPending, resp.ApprovalStatus)
	assert.Equal(t, "2026-04-06", resp.AttendanceDate)
	assert.NotNil(t, stored.ClockIn)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_CheckIn_LeaveHasNoClockIn(t *testing.T) {
	ctx := context.Background()
	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var stored *attendance.Attendance
	deps.repo.createFn = func(ctx context.Context, row *attendance.Attendance) error {
		stored = row
		return nil
	}

	resp, err := deps.service.CheckIn(ctx, uuid.New().String(), attendance.CheckInRequest{
		Status: attendance.StatusOnLeave,
		Date:   "2026-04-07",
	})

	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusOnLeave, resp.Status)
	assert.Nil(t, stored.ClockIn)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_CheckIn_DuplicateDate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findByEmployeeAndDateFn = func(ctx context.Context, eid string, date time.Time) (*attendance.Attendance, error) {
		return &attendance.Attendance{ID: uuid.New()}, nil
	}

	_, err := deps.service.CheckIn(ctx, employeeID, attendance.CheckInRequest{Date: "2026-04-06"})

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_ApproveAndReject(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("approve pending record", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		row := attendance.Attendance{
			ID:             uuid.New(),
			EmployeeID:     uuid.New(),
			AttendanceDate: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
			Status:         attendance.StatusPresent,
			ApprovalStatus: attendance.ApprovalPending,
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.Attendance, error) {
			return &row, nil
		}

		resp, err := deps.service.Approve(ctx, actorID, row.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, attendance.ApprovalApproved, resp.ApprovalStatus)
		assert.Equal(t, actorID, *resp.ApprovedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject pending record", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		row := attendance.Attendance{
			ID:             uuid.New(),
			EmployeeID:     uuid.New(),
			AttendanceDate: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
			Status:         attendance.StatusPresent,
			ApprovalStatus: attendance.ApprovalPending,
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.Attendance, error) {
			return &row, nil
		}

		resp, err := deps.service.Reject(ctx, actorID, row.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, attendance.ApprovalRejected, resp.ApprovalStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already reviewed", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		row := attendance.Attendance{ID: uuid.New(), ApprovalStatus: attendance.ApprovalApproved}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.Attendance, error) {
			return &row, nil
		}

		_, err := deps.service.Approve(ctx, actorID, row.ID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyReviewed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, actorID, uuid.New().String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_GetAll_ScopedByRole(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	allCalled := false
	deps.repo.findAllFn = func(ctx context.Context) ([]attendance.Attendance, error) {
		allCalled = true
		return nil, nil
	}
	deps.repo.findAllByEmployeeFn = func(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
		assert.Equal(t, actorID, employeeID)
		return []attendance.Attendance{{ID: uuid.New(), EmployeeID: uuid.MustParse(actorID)}}, nil
	}

	res, err := deps.service.GetAll(ctx, actorID, false)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.False(t, allCalled)

	_, err = deps.service.GetAll(ctx, actorID, true)
	assert.NoError(t, err)
	assert.True(t, allCalled)
}
