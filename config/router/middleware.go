package router

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lixi-remit/lixi-landing/internal/log"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
	"github.com/lixi-remit/lixi-landing/pkg/ratelimit"
	"github.com/lixi-remit/lixi-landing/pkg/utils"
)

const (
	correlationHeader   = "X-Correlation-ID"
	defaultMaxBodyBytes = int64(1 << 20)
	defaultHSTSMaxAge   = int64(31536000)

	// The landing page only loads its own stylesheet and script.
	contentSecurityPolicy = "default-src 'self'; img-src 'self' data:; style-src 'self'; script-src 'self'; " +
		"connect-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'"
)

// httpSettings is the router hardening configuration, read once at startup.
type httpSettings struct {
	maxBodyBytes          int64
	corsOrigins           []string
	hstsEnabled           bool
	hstsMaxAge            int64
	hstsIncludeSubdomains bool
}

func httpSettingsFromEnv() httpSettings {
	appEnv := strings.ToLower(utils.GetEnvTrimmed("APP_ENV"))

	return httpSettings{
		maxBodyBytes:          positiveInt64(utils.GetEnvTrimmed("MAX_REQUEST_BODY_BYTES"), defaultMaxBodyBytes),
		corsOrigins:           splitList(utils.GetEnvTrimmed("CORS_ALLOWED_ORIGIN")),
		hstsEnabled:           utils.GetEnvBool("HSTS_ENABLED", appEnv == "production" || appEnv == "prod"),
		hstsMaxAge:            positiveInt64(utils.GetEnvTrimmed("HSTS_MAX_AGE"), defaultHSTSMaxAge),
		hstsIncludeSubdomains: utils.GetEnvBool("HSTS_INCLUDE_SUBDOMAINS", true),
	}
}

func positiveInt64(raw string, fallback int64) int64 {
	if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
		return parsed
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s httpSettings) hstsValue() string {
	value := fmt.Sprintf("max-age=%d", s.hstsMaxAge)
	if s.hstsIncludeSubdomains {
		value += "; includeSubDomains"
	}
	return value
}

func (s httpSettings) originAllowed(origin string) bool {
	return origin != "" && (slices.Contains(s.corsOrigins, "*") || slices.Contains(s.corsOrigins, origin))
}

func (routerService *RouterService) correlationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = log.GenerateCorrelationID()
		}

		ctx := context.WithValue(c.Request.Context(), log.CorrelatedIDKey, id)
		correlated := routerService.logger.WithCorrelationID(ctx)
		ctx = context.WithValue(ctx, log.LoggerKeyForContext, correlated)

		c.Request = c.Request.WithContext(ctx)
		c.Header(correlationHeader, id)
		c.Next()
	}
}

func (routerService *RouterService) requestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := routerService.logger.WithCorrelationID(c.Request.Context())
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("HTTP request", args...)
			return
		}
		logger.Info("HTTP request", args...)
	}
}

func (routerService *RouterService) securityHeadersMiddleware() gin.HandlerFunc {
	settings := routerService.settings

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", contentSecurityPolicy)

		// TLS is usually terminated at the proxy in front of us.
		if settings.hstsEnabled && (c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")) {
			h.Set("Strict-Transport-Security", settings.hstsValue())
		}
		c.Next()
	}
}

func (routerService *RouterService) maxBodySizeMiddleware() gin.HandlerFunc {
	maxBytes := routerService.settings.maxBodyBytes

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				ErrorResult(http.StatusRequestEntityTooLarge, "Request payload too large", nil).ToJSON())
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// corsMiddleware only answers for origins in CORS_ALLOWED_ORIGIN. The page and
// its API share an origin, so an empty list is the normal production setting.
func (routerService *RouterService) corsMiddleware() gin.HandlerFunc {
	settings := routerService.settings

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if !settings.originAllowed(origin) {
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Accept-Language, X-Correlation-ID, X-Requested-With")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// timeoutMiddleware bounds the request context. The chain runs on the request
// goroutine; hard limits live on http.Server.
func (routerService *RouterService) timeoutMiddleware() gin.HandlerFunc {
	timeout := routerService.requestTimeout

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			routerService.logger.WithCorrelationID(ctx).Warn("Request timeout detected", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusRequestTimeout,
				ErrorResult(apperrors.StatusRequestTimeout, "Request timeout", nil).ToJSON())
		}
	}
}

// limiterFor picks the handler override, else the default limiter. ok is false
// for a matched route no controller owns.
func (routerService *RouterService) limiterFor(c *gin.Context) (limiter ratelimit.RateLimiter, ok bool) {
	route := c.FullPath()
	if route == "" {
		// NoRoute and NoMethod answers still count against the default limiter.
		return routerService.rateLimiter, true
	}

	handlerKey := routerService.keyForPathAndMethod(route, c.Request.Method)
	if _, found := routerService.handlerToControllerMap[handlerKey]; !found {
		return nil, false
	}

	if override, found := routerService.rateLimitOverrides[handlerKey]; found {
		return override, true
	}
	return routerService.rateLimiter, true
}

func (routerService *RouterService) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter, ok := routerService.limiterFor(c)
		if !ok {
			routerService.logger.Error("Route has no owning controller; check how it was registered",
				"path", c.Request.URL.Path, "route", c.FullPath())
			c.AbortWithStatusJSON(http.StatusNotFound, NotFoundResult("Route not found").ToJSON())
			return
		}
		if limiter == nil {
			c.Next()
			return
		}

		limit, window := limiter.GetLimitDetails()
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Window", window.String())

		clientIP := c.ClientIP()
		limited, err := limiter.IsLimited(c.Request.Context(), "ratelimit:"+clientIP)
		if err != nil {
			// Fail open.
			routerService.logger.Error("Rate limiter error", "error", err, "client_ip", clientIP)
			c.Next()
			return
		}

		if limited {
			retryAfter := strconv.Itoa(max(1, int(math.Ceil(window.Seconds()))))
			routerService.logger.Warn("Rate limit exceeded", "client_ip", clientIP, "route", c.FullPath())
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, TooManyRequestsResult(RateLimitResponse{
				Limit:      limit,
				Window:     window.String(),
				RetryAfter: retryAfter,
			}).ToJSON())
			return
		}

		c.Next()
	}
}
