package site

import (
	"context"
	"errors"
	"net/http"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errSiteNotFound = apperror.New(apperror.CodeNotFound, "site not found", http.StatusNotFound)

type Service interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetAll(ctx context.Context) ([]SiteResponse, error)
	GetByID(ctx context.Context, id string) (SiteResponse, error)
	Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error) {
	row := &ClientSite{
		ID:          uuid.New(),
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return SiteResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]SiteResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]SiteResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SiteResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SiteResponse{}, errSiteNotFound
		}
		return SiteResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SiteResponse{}, errSiteNotFound
		}
		return SiteResponse{}, err
	}

	row.Name = req.Name
	row.Location = req.Location
	row.Description = req.Description

	if err := s.repo.Update(ctx, row); err != nil {
		return SiteResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func mapToResponse(s ClientSite) SiteResponse {
	return SiteResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Location:    s.Location,
		Description: s.Description,
	}
}
