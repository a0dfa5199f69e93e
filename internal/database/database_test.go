package database

import (
	"testing"

	"finn-budget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAutoMigrate_CreatesFinnTables(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range []string{"profiles", "expense_analyses", "budgets", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck())
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)

	assert.Zero(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.AuditLog{}, "idx_audit_logs_action"))
	assert.True(t, db.Migrator().HasIndex(&models.Budget{}, "idx_budgets_profile_latest"))

	// running twice is harmless
	assert.Zero(t, db.CreateIndexes())
}

func TestIndexDDL(t *testing.T) {
	cases := []struct {
		ix   index
		want string
	}{
		{
			ix:   index{name: "idx_a", table: "t", columns: "a"},
			want: "CREATE INDEX IF NOT EXISTS idx_a ON t (a)",
		},
		{
			ix:   index{name: "idx_b", table: "t", columns: "b, c DESC", unique: true, where: "b IS NULL"},
			want: "CREATE UNIQUE INDEX IF NOT EXISTS idx_b ON t (b, c DESC) WHERE b IS NULL",
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ix.ddl())
	}
}

func TestSeedDemoProfile_IsIdempotent(t *testing.T) {
	db := SetupTestDB(t)

	first, err := db.SeedDemoProfile("Demo", decimal.NewFromInt(5200), "Portland")
	require.NoError(t, err)
	second, err := db.SeedDemoProfile("Demo", decimal.NewFromInt(9999), "Elsewhere")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.MonthlyIncome.Equal(decimal.NewFromInt(5200)))
	assert.Equal(t, models.RiskToleranceModerate, second.RiskTolerance)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Profile{Name: "Rolled Back"}).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCleanupTestDB_RemovesSoftDeletedRows(t *testing.T) {
	db := SetupTestDB(t)
	profile := CreateTestProfile(t, db, "Temporary", 1000)
	require.NoError(t, db.Delete(profile).Error)
	require.NoError(t, db.Create(&models.ExpenseAnalysis{
		ProfileID:            uuid.New(),
		Source:               models.AnalysisSourceInline,
		CategorizationSource: models.CategorizationSourceHeuristic,
	}).Error)

	CleanupTestDB(t, db)

	var profiles, analyses int64
	require.NoError(t, db.Unscoped().Model(&models.Profile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.ExpenseAnalysis{}).Count(&analyses).Error)
	assert.Zero(t, profiles)
	assert.Zero(t, analyses)
}
