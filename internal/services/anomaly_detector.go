package services

import (
	"fmt"
	"math"

	"finn-budget/internal/models"
)

const (
	unusualSpendingSigma = 3.0
	missingDataGapDays   = 14
)

type anomalyDetector struct{}

// NewAnomalyDetector creates a new AnomalyDetectorInterface instance
func NewAnomalyDetector() AnomalyDetectorInterface {
	return &anomalyDetector{}
}

// Detect runs every anomaly rule over the transactions. Results are grouped
// by rule and ordered by date within each rule.
func (d *anomalyDetector) Detect(transactions []models.Transaction) []models.DataAnomaly {
	anomalies := make([]models.DataAnomaly, 0)
	if len(transactions) == 0 {
		return anomalies
	}

	sorted := sortedByDate(transactions)

	anomalies = append(anomalies, d.unusualSpending(sorted)...)
	anomalies = append(anomalies, d.missingData(sorted)...)
	anomalies = append(anomalies, d.duplicates(sorted)...)

	return anomalies
}

// unusualSpending flags amounts above mean + 3 population standard deviations
func (d *anomalyDetector) unusualSpending(sorted []models.Transaction) []models.DataAnomaly {
	mean, stddev := amountStats(sorted)
	threshold := mean + unusualSpendingSigma*stddev

	var anomalies []models.DataAnomaly
	for _, txn := range sorted {
		if txn.AmountFloat() <= threshold {
			continue
		}
		amount := txn.Amount
		anomalies = append(anomalies, models.DataAnomaly{
			Date: txn.Date,
			Type: models.AnomalyTypeUnusualSpending,
			Description: fmt.Sprintf("Unusually large expense at %s: %s (average %.2f)",
				txn.MerchantKey(), amount.StringFixed(2), mean),
			Amount: &amount,
		})
	}
	return anomalies
}

func (d *anomalyDetector) missingData(sorted []models.Transaction) []models.DataAnomaly {
	var anomalies []models.DataAnomaly
	for i := 1; i < len(sorted); i++ {
		gap := models.DaysBetween(sorted[i-1].Date, sorted[i].Date)
		if gap <= missingDataGapDays {
			continue
		}
		anomalies = append(anomalies, models.DataAnomaly{
			Date:        sorted[i-1].Day(),
			Type:        models.AnomalyTypeMissingData,
			Description: fmt.Sprintf("No transactions recorded for %d days", gap),
		})
	}
	return anomalies
}

// duplicates reports one anomaly per extra occurrence of the same
// date, description and amount
func (d *anomalyDetector) duplicates(sorted []models.Transaction) []models.DataAnomaly {
	type fingerprint struct {
		day         string
		description string
		amount      string
	}

	seen := make(map[fingerprint]bool)
	var anomalies []models.DataAnomaly
	for _, txn := range sorted {
		key := fingerprint{
			day:         txn.Day().Format("2006-01-02"),
			description: txn.Description,
			amount:      txn.Amount.String(),
		}
		if !seen[key] {
			seen[key] = true
			continue
		}
		amount := txn.Amount
		anomalies = append(anomalies, models.DataAnomaly{
			Date:        txn.Date,
			Type:        models.AnomalyTypeDuplicate,
			Description: fmt.Sprintf("Possible duplicate charge: %s %s", txn.Description, amount.StringFixed(2)),
			Amount:      &amount,
		})
	}
	return anomalies
}

// amountStats returns the mean and population standard deviation
func amountStats(transactions []models.Transaction) (float64, float64) {
	if len(transactions) == 0 {
		return 0, 0
	}

	mean := meanAmount(transactions)
	var squares float64
	for i := range transactions {
		diff := transactions[i].AmountFloat() - mean
		squares += diff * diff
	}
	return mean, math.Sqrt(squares / float64(len(transactions)))
}
