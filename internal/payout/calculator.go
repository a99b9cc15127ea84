package payout

import (
	"context"
	"time"

	"go-payroll/internal/assignment"
	"go-payroll/internal/attendance"

	"github.com/shopspring/decimal"
)

// Flat deduction applied to every payout (taxes/insurance).
const DeductionPercentage = 5

var deductionRate = decimal.New(DeductionPercentage, -2)

// AttendanceStore is the read boundary the calculator pulls presence data
// from. Satisfied by attendance.Repository.
type AttendanceStore interface {
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
}

// AssignmentStore is the read boundary for wage terms. Satisfied by
// assignment.Repository.
type AssignmentStore interface {
	ListOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]assignment.SiteAssignment, error)
	DistinctActiveEmployeeIDs(ctx context.Context) ([]string, error)
}

// Result is one employee's computed payout for one period. The monetary
// fields are what the slip renderer and the persisted record consume;
// Details is display/audit material only.
type Result struct {
	EmployeeID      string
	Period          string
	TotalDaysWorked int
	GrossPay        decimal.Decimal
	Deductions      decimal.Decimal
	NetPay          decimal.Decimal
	Details         Details
}

type Details struct {
	Message             string
	DaysInMonth         int
	AttendanceRecords   int
	SiteName            string
	WageRatePerDay      decimal.Decimal
	WageRatePerMonth    decimal.Decimal
	DeductionPercentage int
}

// Calculator computes payouts from approved attendance and site-wage
// assignments. It holds no state beyond its two stores; given identical
// store contents the same inputs always produce the same Result.
type Calculator struct {
	attendances AttendanceStore
	assignments AssignmentStore
}

func NewCalculator(attendances AttendanceStore, assignments AssignmentStore) *Calculator {
	return &Calculator{attendances: attendances, assignments: assignments}
}

// Calculate produces the payout for one employee and period.
//
// Missing data is not an error: zero approved attendance, no overlapping
// assignment, or no configured wage rate all yield a zero-valued Result
// whose Details.Message says why. Callers distinguish these from payable
// results by TotalDaysWorked and the monetary fields alone.
func (c *Calculator) Calculate(ctx context.Context, employeeID string, period Period) (Result, error) {
	from, to := period.Start(), period.End()

	records, err := c.attendances.ListApprovedInRange(ctx, employeeID, from, to)
	if err != nil {
		return Result{}, err
	}

	totalDaysWorked := len(records)
	if totalDaysWorked == 0 {
		return zeroResult(employeeID, period, 0, "No approved attendance records found for this period"), nil
	}

	assignments, err := c.assignments.ListOverlapping(ctx, employeeID, from, to)
	if err != nil {
		return Result{}, err
	}
	if len(assignments) == 0 {
		return zeroResult(employeeID, period, totalDaysWorked, "No site assignment found for this employee"), nil
	}

	// First overlapping assignment wins; any others are ignored. An employee
	// transferred mid-month is paid entirely against the older assignment's
	// terms. Preserved legacy behavior, not necessarily correct.
	primary := assignments[0]

	daysInMonth := period.Days()
	days := decimal.NewFromInt(int64(totalDaysWorked))

	var grossPay decimal.Decimal
	switch {
	case primary.WageRatePerMonth.IsPositive():
		// Monthly salary pro-rated by days actually worked.
		grossPay = primary.WageRatePerMonth.
			Div(decimal.NewFromInt(int64(daysInMonth))).
			Mul(days)
	case primary.WageRatePerDay.IsPositive():
		grossPay = primary.WageRatePerDay.Mul(days)
	default:
		return zeroResult(employeeID, period, totalDaysWorked, "No wage rate configured for this employee"), nil
	}

	// Round half-up to 2 places at each step, matching the legacy engine.
	grossPay = grossPay.Round(2)
	deductions := grossPay.Mul(deductionRate).Round(2)
	netPay := grossPay.Sub(deductions).Round(2)

	siteName := ""
	if primary.Site != nil {
		siteName = primary.Site.Name
	}

	return Result{
		EmployeeID:      employeeID,
		Period:          period.String(),
		TotalDaysWorked: totalDaysWorked,
		GrossPay:        grossPay,
		Deductions:      deductions,
		NetPay:          netPay,
		Details: Details{
			DaysInMonth:         daysInMonth,
			AttendanceRecords:   totalDaysWorked,
			SiteName:            siteName,
			WageRatePerDay:      primary.WageRatePerDay,
			WageRatePerMonth:    primary.WageRatePerMonth,
			DeductionPercentage: DeductionPercentage,
		},
	}, nil
}

// CalculateForPeriod runs Calculate for every employee with an open-ended
// assignment and keeps only results with at least one day worked. Employees
// are processed sequentially in store order; volumes are small and the
// per-employee computations are independent.
func (c *Calculator) CalculateForPeriod(ctx context.Context, period Period) ([]Result, error) {
	employeeIDs, err := c.assignments.DistinctActiveEmployeeIDs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		res, err := c.Calculate(ctx, employeeID, period)
		if err != nil {
			return nil, err
		}
		if res.TotalDaysWorked > 0 {
			results = append(results, res)
		}
	}

	return results, nil
}

func zeroResult(employeeID string, period Period, daysWorked int, message string) Result {
	return Result{
		EmployeeID:      employeeID,
		Period:          period.String(),
		TotalDaysWorked: daysWorked,
		GrossPay:        decimal.Zero,
		Deductions:      decimal.Zero,
		NetPay:          decimal.Zero,
		Details: Details{
			Message:           message,
			AttendanceRecords: daysWorked,
		},
	}
}
