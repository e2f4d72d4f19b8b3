package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/events"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewLogger(io.Discard, slog.LevelError)
}

func clearIntegrationEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"EMAIL_OCTOPUS_API_KEY", "EMAIL_OCTOPUS_LIST_ID",
		"AMQP_URL", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY",
		"APP_DATABASE_URL", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB_NAME", "POSTGRES_SSLMODE",
	} {
		t.Setenv(key, "")
	}
}

func TestNewAppConfig_Defaults(t *testing.T) {
	for _, key := range []string{"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "REQUEST_TIMEOUT", "WAITLIST_STORE", "SIGNUP_NOTIFY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := NewAppConfig()

	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, 10*time.Second, cfg.NotifyTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestNewAppConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("WAITLIST_STORE", " Postgres ")
	t.Setenv("SIGNUP_NOTIFY_TIMEOUT", "3s")

	cfg := NewAppConfig()

	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "postgres", cfg.Store)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestAppConfig_ValidateRejectsUnknownStore(t *testing.T) {
	cfg := &AppConfig{Store: "dynamo"}
	assert.ErrorContains(t, cfg.Validate(), "unsupported WAITLIST_STORE")
}

func TestBuildDSNFromEnv(t *testing.T) {
	clearIntegrationEnv(t)
	logger := quietLogger()

	_, err := buildDSNFromEnv(logger, defaultDBConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingDatabaseEnv))
	assert.Contains(t, err.Error(), "POSTGRES_HOST")

	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "lixi")
	t.Setenv("POSTGRES_PASSWORD", `"s3cret"`)
	t.Setenv("POSTGRES_DB_NAME", "lixi")

	dsn, err := buildDSNFromEnv(logger, defaultDBConfig())
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=lixi password=s3cret dbname=lixi sslmode=require", dsn)

	t.Setenv("POSTGRES_PORT", "five")
	_, err = buildDSNFromEnv(logger, defaultDBConfig())
	assert.ErrorContains(t, err, "invalid POSTGRES_PORT")

	t.Setenv("APP_DATABASE_URL", "  'postgres://lixi@db/lixi'  ")
	dsn, err = buildDSNFromEnv(logger, defaultDBConfig())
	require.NoError(t, err)
	assert.Equal(t, "postgres://lixi@db/lixi", dsn)
}

func TestOpenDatabase_ConfigErrorIsNotRetried(t *testing.T) {
	clearIntegrationEnv(t)

	calls := 0
	_, err := OpenDatabase(context.Background(), quietLogger(), &DBConfig{Retry: countingPolicy{calls: &calls}})

	require.Error(t, err)
	assert.Zero(t, calls)
}

type countingPolicy struct{ calls *int }

func (p countingPolicy) Execute(ctx context.Context, fn func(context.Context) error) error {
	*p.calls++
	return fn(ctx)
}

func TestLoadIntegrations_Unconfigured(t *testing.T) {
	clearIntegrationEnv(t)

	integrations := LoadIntegrations(context.Background(), quietLogger())

	assert.False(t, integrations.MailingList.Enabled())
	assert.IsType(t, events.NoopPublisher{}, integrations.Publisher)
	assert.False(t, integrations.Publisher.Healthy())
	assert.Nil(t, integrations.ObjectStore)
}

func TestLoadIntegrations_Configured(t *testing.T) {
	clearIntegrationEnv(t)
	t.Setenv("EMAIL_OCTOPUS_API_KEY", "key")
	t.Setenv("EMAIL_OCTOPUS_LIST_ID", "list")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
	t.Setenv("MINIO_BUCKET", "exports")

	integrations := LoadIntegrations(context.Background(), quietLogger())

	assert.True(t, integrations.MailingList.Enabled())
	require.NotNil(t, integrations.ObjectStore)
	assert.Equal(t, "exports", integrations.ObjectStore.Bucket())
}

func TestCleanupClosesPublisher(t *testing.T) {
	publisher := &closingPublisher{}
	ac := &ApplicationConfig{Logger: quietLogger(), Publisher: publisher}

	ac.Cleanup()

	assert.True(t, publisher.closed)
}

type closingPublisher struct {
	events.NoopPublisher
	closed bool
}

func (p *closingPublisher) Close() error {
	p.closed = true
	return nil
}

func TestParseOTLPEndpoint(t *testing.T) {
	target, err := parseOTLPEndpoint("http://collector:4318")
	require.NoError(t, err)
	assert.Equal(t, otlpTarget{hostport: "collector:4318", path: "/v1/traces", insecure: true}, target)

	target, err = parseOTLPEndpoint("https://otel.example.com/custom")
	require.NoError(t, err)
	assert.Equal(t, otlpTarget{hostport: "otel.example.com", path: "/custom"}, target)

	target, err = parseOTLPEndpoint("collector:4318")
	require.NoError(t, err)
	assert.True(t, target.insecure)
	assert.Equal(t, "/v1/traces", target.path)

	_, err = parseOTLPEndpoint("collector:4318/v1/traces")
	assert.Error(t, err)

	_, err = parseOTLPEndpoint("grpc://collector:4317")
	assert.Error(t, err)
}

func TestSetupTracing_DisabledReturnsNilShutdown(t *testing.T) {
	t.Setenv("OTEL_TRACES_ENABLED", "false")

	shutdown, err := SetupTracing(context.Background(), quietLogger())
	require.NoError(t, err)
	assert.Nil(t, shutdown)
}
