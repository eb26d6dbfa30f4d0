package holiday

import (
	"context"
	"errors"
	"strings"
	"time"

	holidayerrors "go-hrms/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDateFormat
	}

	holidayType := req.Type
	if holidayType == "" {
		holidayType = TypeNational
	}

	row := &Holiday{
		ID:          uuid.New(),
		Name:        req.Name,
		HolidayDate: date,
		Type:        holidayType,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return HolidayResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]HolidayResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return holidayerrors.ErrHolidayNotFound
		}
		return err
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return holidayerrors.ErrHolidayDateAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return holidayerrors.ErrHolidayDateAlreadyExists
	}

	return err
}

func mapToResponse(row Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   row.ID.String(),
		Name: row.Name,
		Date: row.HolidayDate.Format("2006-01-02"),
		Type: row.Type,
	}
}
