package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	FindAllByStatus(ctx context.Context, status string) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error

	// ListApprovedInRange feeds the payout calculator: approved records for
	// one employee with dates inside [from, to], oldest first.
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByStatus(ctx context.Context, status string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("status = ?", StatusApproved).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}
