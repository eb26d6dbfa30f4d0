package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ComponentEarning   = "EARNING"
	ComponentDeduction = "DEDUCTION"

	ValueFixed      = "FIXED"
	ValuePercentage = "PERCENTAGE"

	// BasicLabel is the component label provident fund keys on.
	BasicLabel = "Basic"
)

type SalaryStructure struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	CTCAnnual int64     `gorm:"column:ctc_annual;type:bigint;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Components []Component `gorm:"foreignKey:StructureID"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// Component value semantics: PERCENTAGE resolves against CTCAnnual/12,
// FIXED is a literal monthly amount.
type Component struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StructureID uuid.UUID `gorm:"column:structure_id;type:uuid;not null;index"`
	Label       string    `gorm:"column:label;type:varchar(120);not null"`
	Type        string    `gorm:"column:type;type:varchar(20);not null"`
	ValueType   string    `gorm:"column:value_type;type:varchar(20);not null"`
	Value       float64   `gorm:"column:value;type:numeric(14,4);not null;default:0"`
	Position    int       `gorm:"column:position;type:int;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Component) TableName() string {
	return "salary_structure_components"
}
