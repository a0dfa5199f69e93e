package services

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNoValidTransactions = errors.New("no valid transactions found in input")
)

const (
	unknownDescription     = "Unknown"
	minDescriptionRuneSize = 4
)

var (
	fieldSeparator = regexp.MustCompile(`[,\t]`)
	datePattern    = regexp.MustCompile(`\d{1,4}[-/]\d{1,2}[-/]\d{1,4}`)
	headerTokens   = []string{"date", "amount", "description", "日期", "金额", "描述"}
	amountStripper = strings.NewReplacer("$", "", "¥", "", "￥", "", ",", "", " ", "")
)

// NormalizationResult is the output of a normalizer run
type NormalizationResult struct {
	Transactions []models.Transaction
	Quality      models.DataQuality
}

type recordNormalizer struct {
	now func() time.Time
}

// NewRecordNormalizer creates a normalizer. now supplies the processing date
// used for rows whose date cannot be parsed; nil means time.Now.
func NewRecordNormalizer(now func() time.Time) RecordNormalizerInterface {
	if now == nil {
		now = time.Now
	}
	return &recordNormalizer{now: now}
}

// Normalize parses comma or tab delimited statement text into transactions
func (n *recordNormalizer) Normalize(content string) (*NormalizationResult, error) {
	lines := splitLines(content)
	result := &NormalizationResult{Transactions: make([]models.Transaction, 0, len(lines))}

	if len(lines) > 0 && isHeaderLine(lines[0]) {
		result.Quality.HeaderDetected = true
		lines = lines[1:]
	}

	today := models.TruncateToDay(n.now())

	for _, line := range lines {
		result.Quality.TotalLines++

		txn, ok := n.parseLine(line, today)
		if !ok {
			result.Quality.SkippedLines++
			continue
		}

		if txn.SyntheticDate {
			result.Quality.SyntheticDates++
		}
		result.Transactions = append(result.Transactions, txn)
	}

	result.Quality.ParsedTransactions = len(result.Transactions)
	if result.Quality.TotalLines > 0 {
		result.Quality.Completeness = float64(result.Quality.ParsedTransactions) / float64(result.Quality.TotalLines)
	}

	if len(result.Transactions) == 0 {
		return result, ErrNoValidTransactions
	}

	return result, nil
}

func (n *recordNormalizer) parseLine(line string, today time.Time) (models.Transaction, bool) {
	var (
		amount      decimal.Decimal
		hasAmount   bool
		dateToken   string
		description string
	)

	for _, raw := range fieldSeparator.Split(line, -1) {
		field := cleanField(raw)
		if field == "" {
			continue
		}

		if datePattern.MatchString(field) {
			if dateToken == "" {
				dateToken = datePattern.FindString(field)
			}
			continue
		}

		if value, ok := parseAmountToken(field); ok {
			// last numeric token on the line wins
			if !value.IsZero() {
				amount = value
				hasAmount = true
			}
			continue
		}

		if description == "" && utf8.RuneCountInString(field) >= minDescriptionRuneSize {
			description = field
		}
	}

	if !hasAmount {
		return models.Transaction{}, false
	}

	if description == "" {
		description = unknownDescription
	}

	txn := models.Transaction{
		Description: description,
		Amount:      amount.Abs(),
	}

	date, ok := parseStatementDate(dateToken)
	if ok {
		txn.Date = date
	} else {
		txn.Date = today
		txn.SyntheticDate = true
	}

	return txn, true
}

func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	for _, token := range headerTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func cleanField(field string) string {
	field = strings.TrimSpace(field)
	field = strings.Trim(field, `"'`)
	return strings.TrimSpace(field)
}

// parseAmountToken reports whether the token is numeric once currency symbols
// and thousands separators are removed. Only values representable as a finite
// float64 count; anything that underflows to zero is zero. Zero values are
// numeric but callers must not treat them as amounts.
func parseAmountToken(token string) (decimal.Decimal, bool) {
	cleaned := amountStripper.Replace(token)
	if cleaned == "" {
		return decimal.Zero, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// parseStatementDate accepts Y-M-D, M/D/Y and D/M/Y (when the first part
// cannot be a month) with either separator.
func parseStatementDate(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	parts := strings.FieldsFunc(token, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = v
	}

	var year, month, day int
	switch {
	case len(parts[0]) >= 3:
		year, month, day = nums[0], nums[1], nums[2]
	case nums[0] > 12:
		day, month, year = nums[0], nums[1], nums[2]
	default:
		month, day, year = nums[0], nums[1], nums[2]
	}

	if len(parts[0]) < 3 && len(parts[2]) <= 2 {
		year += 2000
	}

	return buildDate(year, month, day)
}

func buildDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 || year > 2999 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 2024-02-30 into March; reject those
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, false
	}
	return date, true
}
