package payout

import (
	"time"

	payouterrors "go-payroll/internal/payout/errors"
)

// Period is one calendar month, the payroll aggregation window.
type Period struct {
	Year  int
	Month time.Month
}

func ParsePeriod(v string) (Period, error) {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return Period{}, payouterrors.ErrInvalidPeriodFormat
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) String() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Start is the first calendar day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last calendar day of the month. Range queries treat it as
// inclusive.
func (p Period) End() time.Time {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

func (p Period) Days() int {
	return p.End().Day()
}
