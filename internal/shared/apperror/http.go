package apperror

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// HTTPError is the flattened form handlers feed into the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps a service error to its HTTP shape. Anything that is not an
// AppError is logged and masked as a 500 so internals never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	zap.L().Error("unhandled service error", zap.Error(err))
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
