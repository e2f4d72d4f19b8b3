package errors

import (
	"errors"
)

const StatusBadGateway = 502

const genericMessage = "An unexpected error occurred"

var statusByType = map[string]int{
	ErrorTypeNotFound:         StatusNotFound,
	ErrorTypeInvalidRequest:   StatusBadRequest,
	ErrorTypeConflict:         StatusConflict,
	ErrorTypeUnauthorized:     StatusUnauthorized,
	ErrorTypeForbidden:        StatusForbidden,
	ErrorTypeTooManyRequests:  StatusTooManyRequests,
	ErrorTypeRequestTimeout:   StatusRequestTimeout,
	ErrorTypeMethodNotAllowed: StatusMethodNotAllowed,
	ErrorTypeUnavailable:      StatusServiceUnavailable,
	ErrorTypeUpstream:         StatusBadGateway,
}

// HTTPStatusCode maps an error to the status the API answers with. Anything
// that is not a typed AppError is a 500.
func HTTPStatusCode(err error) int {
	if status, ok := statusByType[GetErrorType(err)]; ok {
		return status
	}
	return StatusInternalServerError
}

// GetHumanReadableMessage returns the AppError message, never the wrapped cause.
// Untyped errors collapse to a generic message so driver output stays internal.
func GetHumanReadableMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return genericMessage
}
