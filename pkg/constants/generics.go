package constants

import "time"

// RFC 3339 date-time format string used for every timestamp leaving the service.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Default rate limiting configuration
const (
	DefaultRateLimitRequests      = 100
	DefaultRateLimitWindowMinutes = 1

	// WaitlistSignupRequestsPerMinute applies per client IP to POST /api/waitlist.
	WaitlistSignupRequestsPerMinute = 30
	MonitoringRequestsPerMinute     = 10
)

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}

// Supported landing page languages.
const (
	LanguageEnglish    = "en"
	LanguageVietnamese = "vi"
)

// LanguageCookieName stores the visitor's last chosen language.
const LanguageCookieName = "lixi_lang"

// MessengerURL is where every "message us" call to action points.
const MessengerURL = "https://www.facebook.com/messages"

// Waitlist store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)
