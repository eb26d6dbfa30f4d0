package salarystructure

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *SalaryStructure) error
	FindAll(ctx context.Context) ([]SalaryStructure, error)
	FindByID(ctx context.Context, id string) (*SalaryStructure, error)
	Update(ctx context.Context, row *SalaryStructure) error
	ReplaceComponents(ctx context.Context, structureID string, components []Component) error
	Delete(ctx context.Context, id string) error
	CountAssignedEmployees(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, row *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryStructure, error) {
	var rows []SalaryStructure
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryStructure, error) {
	var row SalaryStructure
	err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) Update(ctx context.Context, row *SalaryStructure) error {
	return r.db.WithContext(ctx).
		Omit("Components").
		Save(row).Error
}

func (r *repository) ReplaceComponents(ctx context.Context, structureID string, components []Component) error {
	if err := r.db.WithContext(ctx).
		Where("structure_id = ?", structureID).
		Delete(&Component{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&components).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SalaryStructure{}, "id = ?", id).Error
}

func (r *repository) CountAssignedEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("salary_structure_id = ?", id).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
