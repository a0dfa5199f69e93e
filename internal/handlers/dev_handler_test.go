package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finn-budget/internal/dto"
	"finn-budget/internal/models"
	"finn-budget/internal/services"
	"finn-budget/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveSample(t *testing.T, handler *DevHandler, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dev/sample-statement"+query, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.SampleStatement(e.NewContext(req, rec)))
	return rec
}

func TestSampleStatement_UsesSeedAndMonthWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := service_mocks.NewMockStatementGeneratorInterface(ctrl)

	var gotSeed uint64
	handler := NewDevHandler(func(seed uint64) services.StatementGeneratorInterface {
		gotSeed = seed
		return generator
	})
	handler.now = func() time.Time { return time.Date(2024, 6, 18, 12, 0, 0, 0, time.UTC) }

	lines := []models.StatementLine{{Description: "Starbucks"}, {Description: "Rent"}}
	generator.EXPECT().Generate(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 3).Return(lines)
	generator.EXPECT().Render(lines).Return("Date,Description,Amount\n")

	rec := serveSample(t, handler, "?months=3&seed=42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), gotSeed)

	var response dto.SampleStatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Months)
	assert.Equal(t, uint64(42), response.Seed)
	assert.Equal(t, 2, response.Lines)
}

func TestSampleStatement_SameSeedSameStatement(t *testing.T) {
	handler := NewDevHandler(nil)

	first := serveSample(t, handler, "?months=2&seed=7")
	second := serveSample(t, handler, "?months=2&seed=7")

	require.Equal(t, http.StatusOK, first.Code)
	var a, b dto.SampleStatementResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a.Content, b.Content)
	assert.True(t, strings.HasPrefix(a.Content, "Date,Description,Amount"))
	assert.Positive(t, a.Lines)
}

func TestSampleStatement_RandomSeedIsReported(t *testing.T) {
	handler := NewDevHandler(nil)

	rec := serveSample(t, handler, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var response dto.SampleStatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotZero(t, response.Seed)
	assert.Equal(t, defaultSampleMonths, response.Months)
}

func TestSampleStatement_InvalidParameters(t *testing.T) {
	handler := NewDevHandler(nil)

	testCases := []struct {
		query string
		code  string
	}{
		{"?months=0", "VALIDATION_004"},
		{"?months=25", "VALIDATION_004"},
		{"?seed=-3", "VALIDATION_003"},
		{"?seed=abc", "VALIDATION_003"},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			rec := serveSample(t, handler, tc.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}
}
