package database

import (
	"testing"

	"finn-budget/internal/config"
	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns a migrated in-memory sqlite database that is closed
// when the test ends.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// each new connection to :memory: would see an empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := &DB{DB: gdb, config: &config.DatabaseConfig{MaxConnections: 1, MaxIdleConns: 1}}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func CreateTestProfile(t *testing.T, db *DB, name string, monthlyIncome float64) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Name:          name,
		MonthlyIncome: decimal.NewFromFloat(monthlyIncome),
		Location:      "Portland",
		RiskTolerance: models.RiskToleranceModerate,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CleanupTestDB empties every table, soft-deleted rows included.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, model := range schema {
		if err := db.Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			t.Logf("failed to clean %T: %v", model, err)
		}
	}
}
