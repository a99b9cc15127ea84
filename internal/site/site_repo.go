package site

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *ClientSite) error
	FindAll(ctx context.Context) ([]ClientSite, error)
	FindByID(ctx context.Context, id string) (*ClientSite, error)
	Update(ctx context.Context, s *ClientSite) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *ClientSite) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ClientSite, error) {
	var rows []ClientSite
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ClientSite, error) {
	var s ClientSite
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *ClientSite) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ClientSite{}, "id = ?", id).Error
}
