package assignment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SiteAssignment captures an employee's wage terms at a client site for a
// date range. A NULL end date means the assignment is ongoing; reassignment
// closes the old row and opens a new one, so an employee accumulates history.
type SiteAssignment struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_assignment_employee"`
	SiteID     uuid.UUID `gorm:"column:site_id;type:uuid;not null;index"`
	Site       *SiteRef  `gorm:"foreignKey:SiteID;references:ID"`

	StartDate time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate   *time.Time `gorm:"column:end_date;type:date;index:idx_assignment_employee"`

	// Wage terms. Monthly takes precedence over daily when both are set.
	WageRatePerDay   decimal.Decimal `gorm:"column:wage_rate_per_day;type:numeric(12,2);not null;default:0"`
	WageRatePerMonth decimal.Decimal `gorm:"column:wage_rate_per_month;type:numeric(12,2);not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (SiteAssignment) TableName() string {
	return "site_assignments"
}

type SiteRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (SiteRef) TableName() string {
	return "client_sites"
}
