package site

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientSite struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"column:name;type:varchar(120);not null;uniqueIndex:uq_site_name"`
	Location    string         `gorm:"column:location;type:varchar(255);not null"`
	Description *string        `gorm:"column:description;type:text"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ClientSite) TableName() string {
	return "client_sites"
}
