package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"finn-budget/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsDir = "db/migrations"
	defaultSeedsDir      = "db/seeds"
)

// ErrMigrationsDirMissing is returned by operations that need the migration
// files on disk.
var ErrMigrationsDirMissing = errors.New("migrations directory not found")

// MigrationRunner applies the SQL files under db/migrations with
// golang-migrate and replays db/seeds on request.
type MigrationRunner struct {
	db            *sql.DB
	migrationsDir string
	seedsDir      string
	attempts      int
	backoff       time.Duration
}

type MigrationOption func(*MigrationRunner)

func WithDirs(migrations, seeds string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.migrationsDir = migrations
		mr.seedsDir = seeds
	}
}

// WithReadinessRetry sets how often and how patiently WaitForDatabase pings.
func WithReadinessRetry(attempts int, backoff time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.attempts = attempts
		mr.backoff = backoff
	}
}

func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:            db,
		migrationsDir: defaultMigrationsDir,
		seedsDir:      defaultSeedsDir,
		attempts:      30,
		backoff:       2 * time.Second,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the attempts run out or
// ctx is cancelled.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.attempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			slog.Info("database is ready", "attempts", attempt)
			return nil
		}
		slog.Warn("database not ready", "attempt", attempt, "max_attempts", mr.attempts, "error", lastErr)

		if attempt == mr.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(mr.backoff):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.attempts, lastErr)
}

// RunMigrations applies every pending migration. A missing migrations
// directory is not an error; deployments without SQL files rely on
// AutoMigrate alone.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.open()
	if errors.Is(err, ErrMigrationsDirMissing) {
		slog.Info("no migrations directory, skipping", "path", mr.migrationsDir)
		return nil
	}
	if err != nil {
		return err
	}

	if err := clearDirtyVersion(m); err != nil {
		return err
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("schema is up to date")
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	slog.Info("applied migrations", "version", version)
	return nil
}

// a dirty flag means a previous run died mid-file; re-mark the recorded
// version clean so Up can retry from it
func clearDirtyVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if !dirty {
		return nil
	}

	slog.Warn("schema marked dirty, forcing version", "version", version)
	if err := m.Force(int(version)); err != nil {
		return fmt.Errorf("failed to force migration version %d: %w", version, err)
	}
	return nil
}

// RollbackMigrations reverts the last steps migrations.
func (mr *MigrationRunner) RollbackMigrations(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}

	m, err := mr.open()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back %d migrations: %w", steps, err)
	}

	slog.Info("rolled back migrations", "steps", steps)
	return nil
}

func (mr *MigrationRunner) MigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.open()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	absDir, err := filepath.Abs(mr.migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations directory: %w", err)
	}
	if _, err := os.Stat(absDir); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsDirMissing, mr.migrationsDir)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absDir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// LoadSeeds executes db/seeds/*.sql in name order. A file that fails to
// execute is logged and skipped; one that cannot be read aborts the run.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) (applied int, err error) {
	files, err := filepath.Glob(filepath.Join(mr.seedsDir, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			slog.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		applied++
	}

	slog.Info("seed files executed", "applied", applied, "found", len(files))
	return applied, nil
}

// MigrateOnStartup runs the SQL migrations, and the seeds when enabled, for
// a server started with AUTO_MIGRATE.
func MigrateOnStartup(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig, opts ...MigrationOption) error {
	if !cfg.AutoMigrate {
		return nil
	}

	runner := NewMigrationRunner(db, opts...)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}

	if cfg.SeedSQL {
		if _, err := runner.LoadSeeds(ctx); err != nil {
			slog.Warn("seed loading failed", "error", err)
		}
	}
	return nil
}
