package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string     `gorm:"column:role;type:varchar(20);not null;default:'employee'"`
	EmployeeID   *uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
