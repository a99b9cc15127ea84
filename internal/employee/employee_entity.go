package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName    string         `gorm:"column:full_name;type:varchar(120);not null"`
	Email       string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	PhoneNumber *string        `gorm:"column:phone_number;type:varchar(30)"`
	Role        string         `gorm:"column:role;type:varchar(20);not null;default:'employee'"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
