package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrNoEmployeeProfile = apperror.New(
		apperror.CodeForbidden,
		"no employee profile linked to this account",
		http.StatusForbidden,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"already checked in for today",
		http.StatusConflict,
	)
	ErrNoCheckInToday = apperror.New(
		apperror.CodeNotFound,
		"no check-in found for today",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"already checked out for today",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadySettled = apperror.New(
		apperror.CodeInvalidState,
		"attendance record has already been approved or rejected",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be approved or rejected",
		http.StatusBadRequest,
	)
)
