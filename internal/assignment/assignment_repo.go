package assignment

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *SiteAssignment) error
	FindByID(ctx context.Context, id string) (*SiteAssignment, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SiteAssignment, error)
	Update(ctx context.Context, a *SiteAssignment) error

	// ListOverlapping returns the assignments relevant to a payroll period:
	// start_date <= to AND (end_date IS NULL OR end_date >= from), oldest
	// first so the caller's "first assignment wins" rule is deterministic.
	ListOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]SiteAssignment, error)

	// DistinctActiveEmployeeIDs returns every employee with at least one
	// open-ended assignment. This is the payroll candidate population.
	DistinctActiveEmployeeIDs(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *SiteAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SiteAssignment, error) {
	var a SiteAssignment
	err := r.db.WithContext(ctx).Preload("Site").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SiteAssignment, error) {
	var rows []SiteAssignment
	err := r.db.WithContext(ctx).
		Preload("Site").
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *SiteAssignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) ListOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]SiteAssignment, error) {
	var rows []SiteAssignment
	err := r.db.WithContext(ctx).
		Preload("Site").
		Where("employee_id = ?", employeeID).
		Where("start_date <= ?", to.Format("2006-01-02")).
		Where("end_date IS NULL OR end_date >= ?", from.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DistinctActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&SiteAssignment{}).
		Where("end_date IS NULL").
		Distinct().
		Order("employee_id ASC").
		Pluck("employee_id", &ids).Error
	return ids, err
}
