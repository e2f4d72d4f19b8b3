package waitlist

import (
	"time"

	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
)

const (
	validationErrorMessage = "Validation error"
	alreadyJoinedMessage   = "You're already on our waitlist! We'll be in touch soon."
	joinFailedMessage      = "Failed to join waitlist. Please try again."
	listFailedMessage      = "Failed to fetch waitlist entries"
)

func NewWaitlistController(
	service WaitlistService,
	logger *log.Logger,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/api/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			signupLimiter := rs.NewRateLimiter(constants.WaitlistSignupRequestsPerMinute, time.Minute)

			rs.AddPostHandler(c, signupLimiter, "", createWaitlistEntryHandler(service))
			rs.AddGetHandler(c, nil, "", getAllWaitlistEntriesHandler(service))

			logger.Debug("Waitlist routes ready", "signup_limit_per_minute", constants.WaitlistSignupRequestsPerMinute)
		},
	)
}

func createWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateWaitlistEntryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Warn("Rejected waitlist payload", "error", err)
			return router.ValidationErrorResult(validationErrorMessage, apperrors.FormatValidationErrors(err, &req))
		}

		response, err := service.CreateEntry(ctx.Request.Context(), &req)
		if err != nil {
			switch {
			case apperrors.IsConflict(err):
				return router.ConflictResult(alreadyJoinedMessage)
			case apperrors.IsInvalidRequest(err):
				return router.ValidationErrorResult(validationErrorMessage, nil)
			default:
				return router.AppErrorResult(err, joinFailedMessage)
			}
		}

		return router.OKResult(map[string]any{"entry": response}, "")
	}
}

func getAllWaitlistEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		entries, err := service.GetAllEntries(ctx.Request.Context())
		if err != nil {
			return router.AppErrorResult(err, listFailedMessage)
		}

		return router.OKResult(map[string]any{"entries": entries}, "")
	}
}
