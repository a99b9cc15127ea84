package assignmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id and site_id must be valid UUIDs",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrAlreadyClosed = apperror.New(
		apperror.CodeInvalidState,
		"assignment is already closed",
		http.StatusBadRequest,
	)
	ErrNegativeWageRate = apperror.New(
		apperror.CodeInvalidInput,
		"wage rates cannot be negative",
		http.StatusBadRequest,
	)
)
