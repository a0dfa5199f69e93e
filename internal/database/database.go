package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finn-budget/internal/config"
	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 5 * time.Second

// DB wraps the gorm handle used by the repositories.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// schema lists every model gorm manages, in dependency order.
var schema = []any{
	&models.Profile{},
	&models.ExpenseAnalysis{},
	&models.Budget{},
	&models.AuditLog{},
}

type index struct {
	name    string
	table   string
	columns string
	unique  bool
	where   string
}

func (ix index) ddl() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if ix.unique {
		b.WriteString("UNIQUE ")
	}
	fmt.Fprintf(&b, "INDEX IF NOT EXISTS %s ON %s (%s)", ix.name, ix.table, ix.columns)
	if ix.where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(ix.where)
	}
	return b.String()
}

var indexes = []index{
	{name: "idx_profiles_live", table: "profiles", columns: "deleted_at", where: "deleted_at IS NULL"},
	{name: "idx_profiles_created_at", table: "profiles", columns: "created_at"},
	{name: "idx_expense_analyses_profile_id", table: "expense_analyses", columns: "profile_id", unique: true},
	{name: "idx_expense_analyses_analyzed_at", table: "expense_analyses", columns: "analyzed_at"},
	{name: "idx_budgets_profile_latest", table: "budgets", columns: "profile_id, created_at DESC"},
	{name: "idx_audit_logs_profile_created", table: "audit_logs", columns: "profile_id, created_at DESC"},
	{name: "idx_audit_logs_action", table: "audit_logs", columns: "action"},
}

// New opens the postgres pool described by cfg and checks it answers.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: gdb, config: cfg}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(schema...)
}

// CreateIndexes adds the query indexes gorm tags do not express. Failures are
// logged and counted, never fatal.
func (db *DB) CreateIndexes() (failed int) {
	for _, ix := range indexes {
		if err := db.Exec(ix.ddl()).Error; err != nil {
			slog.Warn("failed to create index", "index", ix.name, "error", err)
			failed++
		}
	}
	return failed
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedDemoProfile returns the profile called name, creating it on first use.
func (db *DB) SeedDemoProfile(name string, monthlyIncome decimal.Decimal, location string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := db.Where("name = ?", name).Take(profile).Error
	switch {
	case err == nil:
		return profile, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to look up demo profile: %w", err)
	}

	profile = &models.Profile{
		Name:          name,
		MonthlyIncome: monthlyIncome,
		Location:      location,
		RiskTolerance: models.RiskToleranceModerate,
	}
	if err := db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create demo profile: %w", err)
	}
	return profile, nil
}

// Initialize connects, runs the SQL migrations when AUTO_MIGRATE is set, then
// lets gorm add whatever they did not create.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := MigrateOnStartup(ctx, sqlDB, &cfg.Database); err != nil {
		slog.Warn("migration runner failed", "error", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if failed := db.CreateIndexes(); failed > 0 {
		slog.Warn("some indexes were not created", "failed", failed, "total", len(indexes))
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}
