package salarystructure_test

import (
	"context"
	"database/sql"
	"testing"

	"go-hrms/internal/salarystructure"
	salarystructureerrors "go-hrms/internal/salarystructure/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStructureRepository struct {
	withTxFn                func(tx *sql.Tx) salarystructure.Repository
	createFn                func(ctx context.Context, row *salarystructure.SalaryStructure) error
	updateFn                func(ctx context.Context, row *salarystructure.SalaryStructure) error
	findAllFn               func(ctx context.Context) ([]salarystructure.SalaryStructure, error)
	findByIDFn              func(ctx context.Context, id string) (*salarystructure.SalaryStructure, error)
	replaceComponentsFn     func(ctx context.Context, structureID string, components []salarystructure.Component) error
	deleteFn                func(ctx context.Context, id string) error
	countAssignedEmployeesFn func(ctx context.Context, structureID string) (int64, error)
}

func (f *fakeStructureRepository) WithTx(tx *sql.Tx) salarystructure.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeStructureRepository) Create(ctx context.Context, row *salarystructure.SalaryStructure) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeStructureRepository) Update(ctx context.Context, row *salarystructure.SalaryStructure) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakeStructureRepository) FindAll(ctx context.Context) ([]salarystructure.SalaryStructure, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeStructureRepository) FindByID(ctx context.Context, id string) (*salarystructure.SalaryStructure, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStructureRepository) ReplaceComponents(ctx context.Context, structureID string, components []salarystructure.Component) error {
	if f.replaceComponentsFn != nil {
		return f.replaceComponentsFn(ctx, structureID, components)
	}
	return nil
}

func (f *fakeStructureRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeStructureRepository) CountAssignedEmployees(ctx context.Context, structureID string) (int64, error) {
	if f.countAssignedEmployeesFn != nil {
		return f.countAssignedEmployeesFn(ctx, structureID)
	}
	return 0, nil
}

type structureServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service salarystructure.Service
	repo    *fakeStructureRepository
}

func setupStructureServiceTest(t *testing.T) *structureServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeStructureRepository{}
	svc := salarystructure.NewService(db, repo)

	return &structureServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestStructureService_Create(t *testing.T) {
	ctx := context.Background()
	deps := setupStructureServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var stored *salarystructure.SalaryStructure
	deps.repo.createFn = func(ctx context.Context, row *salarystructure.SalaryStructure) error {
		stored = row
		return nil
	}

	resp, err := deps.service.Create(ctx, salarystructure.CreateStructureRequest{
		Name:      "Standard",
		CTCAnnual: 600000,
		Components: []salarystructure.ComponentInput{
			{Label: "Basic", Type: salarystructure.ComponentEarning, ValueType: salarystructure.ValuePercentage, Value: 40},
			{Label: "HRA", Type: salarystructure.ComponentEarning, ValueType: salarystructure.ValuePercentage, Value: 20},
			{Label: "Transport", Type: salarystructure.ComponentEarning, ValueType: salarystructure.ValueFixed, Value: 1600},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Standard", resp.Name)
	assert.Len(t, resp.Components, 3)

	// component order is preserved through the position column
	assert.Equal(t, 0, stored.Components[0].Position)
	assert.Equal(t, 2, stored.Components[2].Position)
	assert.Equal(t, stored.ID, stored.Components[0].StructureID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStructureService_Create_RejectsPercentageOver100(t *testing.T) {
	ctx := context.Background()
	deps := setupStructureServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Create(ctx, salarystructure.CreateStructureRequest{
		Name:      "Broken",
		CTCAnnual: 600000,
		Components: []salarystructure.ComponentInput{
			{Label: "Basic", Type: salarystructure.ComponentEarning, ValueType: salarystructure.ValuePercentage, Value: 140},
		},
	})

	assert.ErrorIs(t, err, salarystructureerrors.ErrInvalidPercentage)
}

func TestStructureService_Update_ReplacesComponents(t *testing.T) {
	ctx := context.Background()
	deps := setupStructureServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	existing := salarystructure.SalaryStructure{
		ID:        uuid.New(),
		Name:      "Standard",
		CTCAnnual: 600000,
	}
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*salarystructure.SalaryStructure, error) {
		return &existing, nil
	}

	var replaced []salarystructure.Component
	deps.repo.replaceComponentsFn = func(ctx context.Context, structureID string, components []salarystructure.Component) error {
		replaced = components
		return nil
	}

	resp, err := deps.service.Update(ctx, existing.ID.String(), salarystructure.UpdateStructureRequest{
		Name:      "Standard v2",
		CTCAnnual: 720000,
		Components: []salarystructure.ComponentInput{
			{Label: "Basic", Type: salarystructure.ComponentEarning, ValueType: salarystructure.ValuePercentage, Value: 50},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Standard v2", resp.Name)
	assert.Equal(t, int64(720000), resp.CTCAnnual)
	assert.Len(t, replaced, 1)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStructureService_Delete_BlockedWhenAssigned(t *testing.T) {
	ctx := context.Background()
	deps := setupStructureServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.countAssignedEmployeesFn = func(ctx context.Context, structureID string) (int64, error) {
		return 3, nil
	}
	deps.repo.deleteFn = func(ctx context.Context, id string) error {
		t.Fatal("assigned structure must not be deleted")
		return nil
	}

	err := deps.service.Delete(ctx, uuid.New().String())

	assert.ErrorIs(t, err, salarystructureerrors.ErrStructureInUse)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStructureService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupStructureServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByID(ctx, uuid.New().String())

	assert.ErrorIs(t, err, salarystructureerrors.ErrStructureNotFound)
}
