package holiday_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/holiday"
	holidayerrors "go-hrms/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHolidayRepository struct {
	createFn      func(ctx context.Context, row *holiday.Holiday) error
	findAllFn     func(ctx context.Context) ([]holiday.Holiday, error)
	findInRangeFn func(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeHolidayRepository) Create(ctx context.Context, row *holiday.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeHolidayRepository) FindAll(ctx context.Context) ([]holiday.Holiday, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	if f.findInRangeFn != nil {
		return f.findInRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &fakeHolidayRepository{}
	svc := holiday.NewService(repo)

	var stored *holiday.Holiday
	repo.createFn = func(ctx context.Context, row *holiday.Holiday) error {
		stored = row
		return nil
	}

	resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "Republic Day", Date: "2026-01-26"})

	assert.NoError(t, err)
	assert.Equal(t, "Republic Day", resp.Name)
	assert.Equal(t, "2026-01-26", resp.Date)
	// type defaults to NATIONAL when omitted
	assert.Equal(t, holiday.TypeNational, stored.Type)
}

func TestHolidayService_Create_InvalidDate(t *testing.T) {
	svc := holiday.NewService(&fakeHolidayRepository{})

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "x", Date: "26-01-2026"})

	assert.ErrorIs(t, err, holidayerrors.ErrInvalidDateFormat)
}

func TestHolidayService_Create_DuplicateDate(t *testing.T) {
	repo := &fakeHolidayRepository{
		createFn: func(ctx context.Context, row *holiday.Holiday) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_holiday_date"}
		},
	}
	svc := holiday.NewService(repo)

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Republic Day", Date: "2026-01-26"})

	assert.ErrorIs(t, err, holidayerrors.ErrHolidayDateAlreadyExists)
}

func TestHolidayService_Delete_NotFound(t *testing.T) {
	repo := &fakeHolidayRepository{
		deleteFn: func(ctx context.Context, id string) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := holiday.NewService(repo)

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, holidayerrors.ErrHolidayNotFound)
}
