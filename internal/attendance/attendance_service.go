package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	Review(ctx context.Context, reviewerID, id string, req ReviewRequest) (AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetPending(ctx context.Context) ([]AttendanceResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	// Manager/admin accounts may carry no linked employee record; their
	// employee_id claim is empty and they have nothing to check in as.
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     empID,
		AttendanceDate: today,
		CheckInTime:    now,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		SelfieURL:      req.SelfieURL,
		Status:         StatusPending,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
		}
		return AttendanceResponse{}, err
	}
	if row.CheckOutTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	row.CheckOutTime = &now
	if req.Latitude != nil {
		row.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		row.Longitude = req.Longitude
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

// Review settles a pending record. Settled records stay settled: payroll
// reads approved rows, so flipping them later would silently change pay.
func (s *service) Review(ctx context.Context, reviewerID, id string, req ReviewRequest) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	if row.Status != StatusPending {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadySettled
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	reviewer, err := uuid.Parse(reviewerID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	row.Status = req.Status
	row.ApprovedBy = &reviewer
	if req.AlterationReason != nil {
		row.AlteredBy = &reviewer
		row.AlterationReason = req.AlterationReason
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetPending(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAllByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.EmployeeID.String(),
		AttendanceDate:   a.AttendanceDate.Format("2006-01-02"),
		CheckInTime:      a.CheckInTime.Format(time.RFC3339),
		Latitude:         a.Latitude,
		Longitude:        a.Longitude,
		SelfieURL:        a.SelfieURL,
		Status:           a.Status,
		Notes:            a.Notes,
		AlterationReason: a.AlterationReason,
	}
	if a.CheckOutTime != nil {
		v := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	if a.ApprovedBy != nil {
		v := a.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
