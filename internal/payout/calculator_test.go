package payout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/assignment"
	"go-payroll/internal/attendance"
	"go-payroll/internal/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceStore struct {
	listApprovedFn func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceStore) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.listApprovedFn != nil {
		return f.listApprovedFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

type fakeAssignmentStore struct {
	listOverlappingFn   func(ctx context.Context, employeeID string, from, to time.Time) ([]assignment.SiteAssignment, error)
	distinctActiveIDsFn func(ctx context.Context) ([]string, error)
}

func (f *fakeAssignmentStore) ListOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]assignment.SiteAssignment, error) {
	if f.listOverlappingFn != nil {
		return f.listOverlappingFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeAssignmentStore) DistinctActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	if f.distinctActiveIDsFn != nil {
		return f.distinctActiveIDsFn(ctx)
	}
	return nil, nil
}

func approvedDays(n int) []attendance.Attendance {
	records := make([]attendance.Attendance, n)
	for i := range records {
		records[i] = attendance.Attendance{Status: attendance.StatusApproved}
	}
	return records
}

func monthlyAssignment(rate string, siteName string) assignment.SiteAssignment {
	return assignment.SiteAssignment{
		ID:               uuid.New(),
		EmployeeID:       uuid.New(),
		Site:             &assignment.SiteRef{ID: uuid.New(), Name: siteName},
		StartDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		WageRatePerMonth: decimal.RequireFromString(rate),
	}
}

func dailyAssignment(rate string, siteName string) assignment.SiteAssignment {
	return assignment.SiteAssignment{
		ID:             uuid.New(),
		EmployeeID:     uuid.New(),
		Site:           &assignment.SiteRef{ID: uuid.New(), Name: siteName},
		StartDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		WageRatePerDay: decimal.RequireFromString(rate),
	}
}

func mustPeriod(t *testing.T, v string) payout.Period {
	t.Helper()
	p, err := payout.ParsePeriod(v)
	assert.NoError(t, err)
	return p
}

func TestCalculator_MonthlyRateProRated(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			assert.Equal(t, employeeID, id)
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), to)
			return approvedDays(20), nil
		},
	}
	assignments := &fakeAssignmentStore{
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			return []assignment.SiteAssignment{monthlyAssignment("24000", "North Plant")}, nil
		},
	}

	calc := payout.NewCalculator(attendances, assignments)
	res, err := calc.Calculate(ctx, employeeID, mustPeriod(t, "2025-03"))

	assert.NoError(t, err)
	assert.Equal(t, 20, res.TotalDaysWorked)
	assert.Equal(t, "15483.87", res.GrossPay.StringFixed(2))
	assert.Equal(t, "774.19", res.Deductions.StringFixed(2))
	assert.Equal(t, "14709.68", res.NetPay.StringFixed(2))
	assert.Equal(t, 31, res.Details.DaysInMonth)
	assert.Equal(t, "North Plant", res.Details.SiteName)
	assert.Equal(t, 5, res.Details.DeductionPercentage)
	assert.Empty(t, res.Details.Message)
}

func TestCalculator_MonthlyRatePreferredOverDaily(t *testing.T) {
	ctx := context.Background()

	a := monthlyAssignment("24000", "North Plant")
	a.WageRatePerDay = decimal.RequireFromString("999")

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			return approvedDays(20), nil
		},
	}
	assignments := &fakeAssignmentStore{
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			return []assignment.SiteAssignment{a}, nil
		},
	}

	calc := payout.NewCalculator(attendances, assignments)
	res, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-03"))

	assert.NoError(t, err)
	assert.Equal(t, "15483.87", res.GrossPay.StringFixed(2))
}

func TestCalculator_DailyRate(t *testing.T) {
	ctx := context.Background()

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			return approvedDays(15), nil
		},
	}
	assignments := &fakeAssignmentStore{
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			return []assignment.SiteAssignment{dailyAssignment("800", "South Depot")}, nil
		},
	}

	calc := payout.NewCalculator(attendances, assignments)
	res, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-04"))

	assert.NoError(t, err)
	assert.Equal(t, 15, res.TotalDaysWorked)
	assert.Equal(t, "12000.00", res.GrossPay.StringFixed(2))
	assert.Equal(t, "600.00", res.Deductions.StringFixed(2))
	assert.Equal(t, "11400.00", res.NetPay.StringFixed(2))
}

func TestCalculator_NoApprovedAttendance(t *testing.T) {
	ctx := context.Background()

	assignments := &fakeAssignmentStore{
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			t.Fatal("assignments must not be queried when there is no attendance")
			return nil, nil
		},
	}

	calc := payout.NewCalculator(&fakeAttendanceStore{}, assignments)
	res, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-03"))

	assert.NoError(t, err)
	assert.Equal(t, 0, res.TotalDaysWorked)
	assert.True(t, res.GrossPay.IsZero())
	assert.True(t, res.NetPay.IsZero())
	assert.Equal(t, "No approved attendance records found for this period", res.Details.Message)
}

func TestCalculator_NoAssignment(t *testing.T) {
	ctx := context.Background()

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			return approvedDays(10), nil
		},
	}

	calc := payout.NewCalculator(attendances, &fakeAssignmentStore{})
	res, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-03"))

	assert.NoError(t, err)
	assert.Equal(t, 10, res.TotalDaysWorked)
	assert.True(t, res.GrossPay.IsZero())
	assert.Equal(t, "No site assignment found for this employee", res.Details.Message)
}

func TestCalculator_NoWageRate(t *testing.T) {
	ctx := context.Background()

	a := monthlyAssignment("0", "North Plant")

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			return approvedDays(10), nil
		},
	}
	assignments := &fakeAssignmentStore{
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			return []assignment.SiteAssignment{a}, nil
		},
	}

	calc := payout.NewCalculator(attendances, assignments)
	res, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-03"))

	assert.NoError(t, err)
	assert.True(t, res.GrossPay.IsZero())
	assert.Equal(t, "No wage rate configured for this employee", res.Details.Message)
}

// An employee transferred mid-month has two overlapping assignments; the
// whole month is paid against the first one the store returns.
func TestCalculator_FirstAssignmentWinsOnOverlap(t *testing.T) {
	ctx := context.Background()

	older := dailyAssignment("800", "South Depot")
	newer := dailyAssignment("1000", "North Plant")

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			return approvedDays(10), nil
		},
	}
	assignments := &fakeAssignmentStore{
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			return []assignment.SiteAssignment{older, newer}, nil
		},
	}

	calc := payout.NewCalculator(attendances, assignments)
	res, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-03"))

	assert.NoError(t, err)
	assert.Equal(t, "8000.00", res.GrossPay.StringFixed(2))
	assert.Equal(t, "South Depot", res.Details.SiteName)
}

func TestCalculator_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			return nil, storeErr
		},
	}

	calc := payout.NewCalculator(attendances, &fakeAssignmentStore{})
	_, err := calc.Calculate(ctx, uuid.New().String(), mustPeriod(t, "2025-03"))

	assert.ErrorIs(t, err, storeErr)
}

func TestCalculator_CalculateForPeriod_DropsZeroDayResults(t *testing.T) {
	ctx := context.Background()
	worked := uuid.New().String()
	idle := uuid.New().String()

	attendances := &fakeAttendanceStore{
		listApprovedFn: func(ctx context.Context, id string, from, to time.Time) ([]attendance.Attendance, error) {
			if id == worked {
				return approvedDays(15), nil
			}
			return nil, nil
		},
	}
	assignments := &fakeAssignmentStore{
		distinctActiveIDsFn: func(ctx context.Context) ([]string, error) {
			return []string{worked, idle}, nil
		},
		listOverlappingFn: func(ctx context.Context, id string, from, to time.Time) ([]assignment.SiteAssignment, error) {
			return []assignment.SiteAssignment{dailyAssignment("800", "South Depot")}, nil
		},
	}

	calc := payout.NewCalculator(attendances, assignments)
	results, err := calc.CalculateForPeriod(ctx, mustPeriod(t, "2025-04"))

	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, worked, results[0].EmployeeID)
		assert.Equal(t, "12000.00", results[0].GrossPay.StringFixed(2))
	}
}

func TestCalculator_CalculateForPeriod_EmptyWorkforce(t *testing.T) {
	ctx := context.Background()

	calc := payout.NewCalculator(&fakeAttendanceStore{}, &fakeAssignmentStore{})
	results, err := calc.CalculateForPeriod(ctx, mustPeriod(t, "2025-04"))

	assert.NoError(t, err)
	assert.Empty(t, results)
}
