package payouterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrAlreadyGenerated = apperror.New(
		apperror.CodeConflict,
		"payouts already generated for this period; delete existing payouts or target a specific employee",
		http.StatusBadRequest,
	)
	ErrNothingToGenerate = apperror.New(
		apperror.CodeNotFound,
		"no payouts to generate; no approved attendance found for this period",
		http.StatusNotFound,
	)
	ErrPayoutNotFound = apperror.New(
		apperror.CodeNotFound,
		"payout not found",
		http.StatusNotFound,
	)
	ErrNotPayoutOwner = apperror.New(
		apperror.CodeForbidden,
		"not authorized to access this payout",
		http.StatusForbidden,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payout is already marked as paid",
		http.StatusBadRequest,
	)
)
