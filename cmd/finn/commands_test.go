package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finn-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementCSV = `Date,Description,Amount
2024-01-01,Rent Payment,2000.00
2024-01-05,Netflix Subscription,15.49
2024-02-01,Rent Payment,2000.00
2024-02-05,Netflix Subscription,15.49
2024-03-01,Rent Payment,2000.00
2024-03-05,Netflix Subscription,15.49
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeStatement(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAnalyze_PrintsMetadata(t *testing.T) {
	out, err := run(t, "analyze", writeStatement(t, statementCSV), "--income", "6000")
	require.NoError(t, err)

	var metadata models.ExpenseMetadata
	require.NoError(t, json.Unmarshal([]byte(out), &metadata))
	assert.Equal(t, 6, metadata.TransactionCount)
	assert.Equal(t, models.CategorizationSourceHeuristic, metadata.CategorizationSource)
	assert.NotEmpty(t, metadata.RecurringExpenses)
}

func TestAnalyze_PrettyOutputIsIndented(t *testing.T) {
	out, err := run(t, "analyze", "--pretty", writeStatement(t, statementCSV))
	require.NoError(t, err)

	assert.Contains(t, out, "\n  \"total_expenses\"")
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := run(t, "analyze", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to read statement")

	_, err = run(t, "analyze", writeStatement(t, statementCSV), "--income", "lots")
	assert.ErrorContains(t, err, "invalid --income")

	_, err = run(t, "analyze")
	assert.Error(t, err)
}

func TestSample_IsDeterministicForSeed(t *testing.T) {
	first, err := run(t, "sample", "--months", "2", "--seed", "42")
	require.NoError(t, err)
	second, err := run(t, "sample", "--months", "2", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "Date,"), "expected a CSV header, got %q", first[:min(len(first), 40)])
}

func TestSample_RejectsMonthsOutOfRange(t *testing.T) {
	_, err := run(t, "sample", "--months", "0")
	assert.ErrorContains(t, err, "--months")

	_, err = run(t, "sample", "--months", "25")
	assert.ErrorContains(t, err, "--months")
}

func TestSampleOutputAnalyzes(t *testing.T) {
	sample, err := run(t, "sample", "--months", "3", "--seed", "7")
	require.NoError(t, err)

	out, err := run(t, "analyze", writeStatement(t, sample))
	require.NoError(t, err)

	var metadata models.ExpenseMetadata
	require.NoError(t, json.Unmarshal([]byte(out), &metadata))
	assert.Positive(t, metadata.TransactionCount)
}
