package salarystructure

import (
	"context"
	"database/sql"
	"errors"

	salarystructureerrors "go-hrms/internal/salarystructure/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_structure_service.go -destination=mock/salary_structure_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStructureRequest) (StructureResponse, error)
	GetAll(ctx context.Context) ([]StructureResponse, error)
	GetByID(ctx context.Context, id string) (StructureResponse, error)
	Update(ctx context.Context, id string, req UpdateStructureRequest) (StructureResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateStructureRequest) (StructureResponse, error) {
	if err := validateComponents(req.Components); err != nil {
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &SalaryStructure{
		ID:        uuid.New(),
		Name:      req.Name,
		CTCAnnual: req.CTCAnnual,
	}
	row.Components = buildComponents(row.ID, req.Components)

	if err := qtx.Create(ctx, row); err != nil {
		return StructureResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	return MapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]StructureResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]StructureResponse, len(rows))
	for i, row := range rows {
		res[i] = MapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StructureResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StructureResponse{}, salarystructureerrors.ErrStructureNotFound
		}
		return StructureResponse{}, err
	}

	return MapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStructureRequest) (StructureResponse, error) {
	if err := validateComponents(req.Components); err != nil {
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StructureResponse{}, salarystructureerrors.ErrStructureNotFound
		}
		return StructureResponse{}, err
	}

	row.Name = req.Name
	row.CTCAnnual = req.CTCAnnual

	if err := qtx.Update(ctx, row); err != nil {
		return StructureResponse{}, err
	}

	row.Components = buildComponents(row.ID, req.Components)
	if err := qtx.ReplaceComponents(ctx, id, row.Components); err != nil {
		return StructureResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	return MapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assigned, err := qtx.CountAssignedEmployees(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return salarystructureerrors.ErrStructureInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func validateComponents(components []ComponentInput) error {
	for _, comp := range components {
		if comp.ValueType == ValuePercentage && comp.Value > 100 {
			return salarystructureerrors.ErrInvalidPercentage
		}
	}
	return nil
}

func buildComponents(structureID uuid.UUID, inputs []ComponentInput) []Component {
	components := make([]Component, len(inputs))
	for i, in := range inputs {
		components[i] = Component{
			ID:          uuid.New(),
			StructureID: structureID,
			Label:       in.Label,
			Type:        in.Type,
			ValueType:   in.ValueType,
			Value:       in.Value,
			Position:    i,
		}
	}
	return components
}

func MapToResponse(row SalaryStructure) StructureResponse {
	components := make([]ComponentResponse, len(row.Components))
	for i, comp := range row.Components {
		components[i] = ComponentResponse{
			Label:     comp.Label,
			Type:      comp.Type,
			ValueType: comp.ValueType,
			Value:     comp.Value,
		}
	}

	return StructureResponse{
		ID:         row.ID.String(),
		Name:       row.Name,
		CTCAnnual:  row.CTCAnnual,
		Components: components,
	}
}
