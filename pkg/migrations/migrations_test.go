package migrations

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *recordingLogger) Info(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(string, ...any) {}

type fakeMigrator struct {
	upErr      error
	version    uint
	dirty      bool
	versionErr error
	closed     atomic.Bool
}

func (m *fakeMigrator) Up() error { return m.upErr }

func (m *fakeMigrator) Version() (uint, bool, error) { return m.version, m.dirty, m.versionErr }

func (m *fakeMigrator) Close() (error, error) {
	m.closed.Store(true)
	return nil, nil
}

type blockingMigrator struct {
	fakeMigrator
	release   chan struct{}
	closeOnce sync.Once
}

func (m *blockingMigrator) Up() error {
	<-m.release
	return nil
}

func (m *blockingMigrator) Close() (error, error) {
	m.closeOnce.Do(func() {
		m.closed.Store(true)
		close(m.release)
	})
	return nil, nil
}

// stubFactories swaps the package factories for the duration of the test and
// records the source URL handed to the migrator.
func stubFactories(t *testing.T, m migrator, initErr error) *string {
	t.Helper()

	origDriver, origMigrator := driverFactory, migratorFactory
	t.Cleanup(func() {
		driverFactory, migratorFactory = origDriver, origMigrator
	})

	var gotSource string
	driverFactory = func(_ *sql.DB, cfg Config) (database.Driver, error) {
		require.NotEmpty(t, cfg.MigrationsTable)
		return nil, nil
	}
	migratorFactory = func(src string, _ database.Driver) (migrator, error) {
		gotSource = src
		if initErr != nil {
			return nil, initErr
		}
		return m, nil
	}

	return &gotSource
}

func TestUp_NilDB(t *testing.T) {
	assert.Error(t, Up(context.Background(), nil, Config{}))
}

func TestUp_CancelledContextSkipsDriverCreation(t *testing.T) {
	called := false
	origDriver := driverFactory
	t.Cleanup(func() { driverFactory = origDriver })
	driverFactory = func(*sql.DB, Config) (database.Driver, error) {
		called = true
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Up(ctx, &sql.DB{}, Config{Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestUp_DeadlineClosesMigrator(t *testing.T) {
	block := &blockingMigrator{release: make(chan struct{})}
	stubFactories(t, block, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Up(ctx, &sql.DB{}, Config{Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, block.closed.Load())
}

func TestUp_NoChangeIsNotAnError(t *testing.T) {
	logger := &recordingLogger{}
	stubFactories(t, &fakeMigrator{upErr: migrate.ErrNoChange}, nil)

	require.NoError(t, Up(context.Background(), &sql.DB{}, Config{Dir: t.TempDir(), Logger: logger}))
	assert.Contains(t, logger.infos, "No migrations to apply")
}

func TestUp_SuccessLogsAndCloses(t *testing.T) {
	logger := &recordingLogger{}
	m := &fakeMigrator{}
	stubFactories(t, m, nil)

	require.NoError(t, Up(context.Background(), &sql.DB{}, Config{Dir: t.TempDir(), Logger: logger}))
	assert.Contains(t, logger.infos, "Migrations applied successfully")
	assert.True(t, m.closed.Load())
}

func TestUp_WrapsUpAndInitErrors(t *testing.T) {
	stubFactories(t, &fakeMigrator{upErr: errors.New("syntax error at or near")}, nil)
	err := Up(context.Background(), &sql.DB{}, Config{Dir: t.TempDir()})
	assert.ErrorContains(t, err, "migrations: up")

	stubFactories(t, nil, errors.New("boom"))
	err = Up(context.Background(), &sql.DB{}, Config{Dir: t.TempDir()})
	assert.ErrorContains(t, err, "migrations: init")
}

func TestUp_SourceURLEscapesSpaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lixi migrations")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	got := stubFactories(t, &fakeMigrator{upErr: migrate.ErrNoChange}, nil)
	require.NoError(t, Up(context.Background(), &sql.DB{}, Config{Dir: dir}))

	parsed, err := url.Parse(*got)
	require.NoError(t, err)
	assert.Equal(t, "file", parsed.Scheme)

	abs, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.ToSlash(abs), parsed.Path)
}

func TestCurrentStatus(t *testing.T) {
	stubFactories(t, &fakeMigrator{version: 2}, nil)
	status, err := CurrentStatus(&sql.DB{}, Config{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, Status{Version: 2, Applied: true}, status)

	stubFactories(t, &fakeMigrator{versionErr: migrate.ErrNilVersion}, nil)
	status, err = CurrentStatus(&sql.DB{}, Config{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.False(t, status.Applied)
}
