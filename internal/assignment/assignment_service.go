package assignment

import (
	"context"
	"errors"
	"time"

	assignmenterrors "go-payroll/internal/assignment/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
	Close(ctx context.Context, id string, req CloseAssignmentRequest) (AssignmentResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidID
	}
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return AssignmentResponse{}, err
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			return AssignmentResponse{}, err
		}
		if parsed.Before(startDate) {
			return AssignmentResponse{}, assignmenterrors.ErrEndBeforeStart
		}
		endDate = &parsed
	}

	perDay := decimal.Zero
	if req.WageRatePerDay != nil {
		perDay = *req.WageRatePerDay
	}
	perMonth := decimal.Zero
	if req.WageRatePerMonth != nil {
		perMonth = *req.WageRatePerMonth
	}
	if perDay.IsNegative() || perMonth.IsNegative() {
		return AssignmentResponse{}, assignmenterrors.ErrNegativeWageRate
	}

	row := &SiteAssignment{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		SiteID:           siteID,
		StartDate:        startDate,
		EndDate:          endDate,
		WageRatePerDay:   perDay,
		WageRatePerMonth: perMonth,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return AssignmentResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]AssignmentResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

// Close ends an ongoing assignment. The caller is expected to open a new
// assignment afterwards when the employee moves to another site.
func (s *service) Close(ctx context.Context, id string, req CloseAssignmentRequest) (AssignmentResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
		}
		return AssignmentResponse{}, err
	}

	if row.EndDate != nil {
		return AssignmentResponse{}, assignmenterrors.ErrAlreadyClosed
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if endDate.Before(row.StartDate) {
		return AssignmentResponse{}, assignmenterrors.ErrEndBeforeStart
	}

	row.EndDate = &endDate
	if err := s.repo.Update(ctx, row); err != nil {
		return AssignmentResponse{}, err
	}
	return mapToResponse(*row), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, assignmenterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(a SiteAssignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.EmployeeID.String(),
		SiteID:           a.SiteID.String(),
		StartDate:        a.StartDate.Format("2006-01-02"),
		WageRatePerDay:   a.WageRatePerDay,
		WageRatePerMonth: a.WageRatePerMonth,
	}
	if a.Site != nil {
		resp.SiteName = a.Site.Name
	}
	if a.EndDate != nil {
		v := a.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}
