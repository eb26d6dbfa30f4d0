package holiday

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeNational = "NATIONAL"
	TypeCompany  = "COMPANY"
	TypeOptional = "OPTIONAL"
)

type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:name;type:varchar(120);not null"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex:uq_holiday_date"`
	Type        string    `gorm:"column:type;type:varchar(20);not null;default:NATIONAL"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
