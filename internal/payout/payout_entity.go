package payout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusGenerated = "generated"
	StatusPaid      = "paid"
)

// Payout is the persisted result of one generation run for one employee and
// period. Rows are immutable once written except for attaching a slip URL
// and flipping generated -> paid; a payout is never recomputed in place.
//
// The payouts table carries a unique index on (employee_id, period) so a
// concurrent duplicate run fails on insert instead of silently doubling pay.
type Payout struct {
	ID              uuid.UUID
	EmployeeID      uuid.UUID
	Period          string
	TotalDaysWorked int
	GrossPay        decimal.Decimal
	Deductions      decimal.Decimal
	NetPay          decimal.Decimal
	Status          string
	GeneratedDate   time.Time
	PayoutSlipURL   *string

	// Joined from employees for history/slip display, not payout columns.
	EmployeeName  string
	EmployeeEmail string
}
