package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	Upsert(ctx context.Context, row *Payroll) error
	FindAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]Payroll, int64, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByIDs(ctx context.Context, ids []string) ([]Payroll, error)
	BulkUpdateStatus(ctx context.Context, ids []string, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx carries the caller's transaction for the raw-SQL paths; the
// gorm-backed methods keep their own connection, so the single-row upsert —
// not the surrounding tx — is the real atomicity boundary for generation.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
	var row Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("pay_month = ?", month).
		Where("pay_year = ?", year).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert is the concurrency boundary for generation: the unique
// (employee_id, pay_month, pay_year) index plus ON CONFLICT resolves two
// concurrent sweeps without application-level locks.
func (r *repository) Upsert(ctx context.Context, row *Payroll) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "pay_month"},
				{Name: "pay_year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"salary_snapshot",
				"attendance_snapshot",
				"earnings",
				"deductions",
				"adjustments",
				"statutory",
				"total_earnings",
				"total_deductions",
				"net_payable",
				"status",
				"generated_by",
				"generated_at",
				"approved_by",
				"approved_at",
				"payment_details",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) FindAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]Payroll, int64, error) {
	db := r.db.WithContext(ctx).Model(&Payroll{})
	if filter.Month != nil {
		db = db.Where("pay_month = ?", *filter.Month)
	}
	if filter.Year != nil {
		db = db.Where("pay_year = ?", *filter.Year)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var rows []Payroll
	err := db.
		Order("pay_year DESC, pay_month DESC, created_at ASC").
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var row Payroll
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Payroll, error) {
	var rows []Payroll
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	return rows, err
}

func (r *repository) BulkUpdateStatus(ctx context.Context, ids []string, fields map[string]any) error {
	if len(ids) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id IN ?", ids).
		Updates(fields).Error
}
