package site_test

import (
	"context"
	"testing"

	"go-payroll/internal/site"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSiteRepository struct {
	createFn   func(ctx context.Context, s *site.ClientSite) error
	findAllFn  func(ctx context.Context) ([]site.ClientSite, error)
	findByIDFn func(ctx context.Context, id string) (*site.ClientSite, error)
	updateFn   func(ctx context.Context, s *site.ClientSite) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeSiteRepository) Create(ctx context.Context, s *site.ClientSite) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSiteRepository) FindAll(ctx context.Context) ([]site.ClientSite, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeSiteRepository) FindByID(ctx context.Context, id string) (*site.ClientSite, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSiteRepository) Update(ctx context.Context, s *site.ClientSite) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeSiteRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestSiteService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSiteRepository{}
	svc := site.NewService(repo)

	resp, err := svc.Create(ctx, site.CreateSiteRequest{Name: "North Plant", Location: "Karachi"})

	assert.NoError(t, err)
	assert.Equal(t, "North Plant", resp.Name)
	assert.Equal(t, "Karachi", resp.Location)
	assert.NotEmpty(t, resp.ID)
}

func TestSiteService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	svc := site.NewService(&fakeSiteRepository{})
	_, err := svc.GetByID(ctx, uuid.New().String())

	assert.Error(t, err)
}

func TestSiteService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := &fakeSiteRepository{
		findByIDFn: func(ctx context.Context, v string) (*site.ClientSite, error) {
			return &site.ClientSite{ID: id, Name: "Old", Location: "Lahore"}, nil
		},
	}

	svc := site.NewService(repo)
	resp, err := svc.Update(ctx, id.String(), site.UpdateSiteRequest{Name: "South Depot", Location: "Lahore"})

	assert.NoError(t, err)
	assert.Equal(t, "South Depot", resp.Name)
}
