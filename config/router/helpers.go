package router

import (
	"net/http"

	"github.com/lixi-remit/lixi-landing/internal/log"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	}
}

func TooManyRequestsResult(data RateLimitResponse) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusTooManyRequests,
		Data:       data,
		Message:    "Too Many Requests",
	}
}

func BadRequestResult(message string, data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Data:       data,
		Message:    message,
	}
}

// ValidationErrorResult is a 400 that always carries an errors list, even an empty one.
func ValidationErrorResult(message string, errs any) *ServiceResult {
	if errs == nil {
		errs = []any{}
	}
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Errors:     errs,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ConflictResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusConflict,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string, data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}

// AppErrorResult answers with the status mapped from err. Server-side failures
// use fallback as the message; client errors keep the AppError message.
func AppErrorResult(err error, fallback string) *ServiceResult {
	status := apperrors.HTTPStatusCode(err)
	message := apperrors.GetHumanReadableMessage(err)
	if status >= http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	return &ServiceResult{StatusCode: status, Message: message}
}

func HTMLPage(template string, data any) *PageResult {
	return &PageResult{
		StatusCode: http.StatusOK,
		Template:   template,
		Data:       data,
	}
}
