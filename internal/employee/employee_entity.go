package employee

import (
	"time"

	"go-hrms/internal/salarystructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusDisabled = "DISABLED"
)

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(30);not null;uniqueIndex"`
	FullName       string    `gorm:"column:full_name;type:varchar(120);not null"`
	Email          string    `gorm:"column:email;type:varchar(160);not null;uniqueIndex"`
	Phone          *string   `gorm:"column:phone;type:varchar(30)"`
	HireDate       time.Time `gorm:"column:hire_date;type:date;not null"`

	// BaseSalary dipakai sebagai fallback saat karyawan belum punya struktur gaji.
	BaseSalary        int64      `gorm:"column:base_salary;type:bigint;not null;default:0"`
	SalaryStructureID *uuid.UUID `gorm:"column:salary_structure_id;type:uuid"`

	// Payroll history references employees, so records are never hard-deleted;
	// DISABLED removes them from the generation sweep instead.
	Status string `gorm:"column:status;type:varchar(20);not null;default:ACTIVE"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	SalaryStructure *salarystructure.SalaryStructure `gorm:"foreignKey:SalaryStructureID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}
