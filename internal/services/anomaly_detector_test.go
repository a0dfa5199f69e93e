package services

import (
	"testing"
	"time"

	"finn-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anomaliesOfType(anomalies []models.DataAnomaly, kind string) []models.DataAnomaly {
	var matched []models.DataAnomaly
	for _, anomaly := range anomalies {
		if anomaly.Type == kind {
			matched = append(matched, anomaly)
		}
	}
	return matched
}

func steadySpending(start time.Time, days int) []models.Transaction {
	transactions := make([]models.Transaction, 0, days)
	for i := 0; i < days; i++ {
		amount := 90.0
		if i%2 == 1 {
			amount = 110
		}
		transactions = append(transactions, txn(start.AddDate(0, 0, i), "Corner Market", amount, models.CategoryFoodDining))
	}
	return transactions
}

func TestAnomalyDetector_UnusualSpending(t *testing.T) {
	transactions := steadySpending(date(2024, time.January, 1), 50)
	transactions = append(transactions,
		txn(date(2024, time.January, 10), "Jewelry Store", 15000, models.CategoryShopping),
		txn(date(2024, time.January, 11), "Dinner out", 150, models.CategoryFoodDining),
	)

	anomalies := NewAnomalyDetector().Detect(transactions)

	unusual := anomaliesOfType(anomalies, models.AnomalyTypeUnusualSpending)
	require.Len(t, unusual, 1)
	assert.Equal(t, date(2024, time.January, 10), unusual[0].Date)
	require.NotNil(t, unusual[0].Amount)
	assert.Equal(t, "15000", unusual[0].Amount.String())
	assert.Contains(t, unusual[0].Description, "Jewelry Store")

	assert.Empty(t, anomaliesOfType(anomalies, models.AnomalyTypeMissingData))
	assert.Empty(t, anomaliesOfType(anomalies, models.AnomalyTypeDuplicate))
}

func TestAnomalyDetector_MissingData(t *testing.T) {
	transactions := []models.Transaction{
		txn(date(2024, time.January, 1), "Corner Market", 20, models.CategoryFoodDining),
		txn(date(2024, time.January, 15), "Corner Market", 21, models.CategoryFoodDining),
		txn(date(2024, time.February, 20), "Corner Market", 22, models.CategoryFoodDining),
	}

	gaps := anomaliesOfType(NewAnomalyDetector().Detect(transactions), models.AnomalyTypeMissingData)

	require.Len(t, gaps, 1, "a 14 day gap is allowed")
	assert.Equal(t, date(2024, time.January, 15), gaps[0].Date)
	assert.Contains(t, gaps[0].Description, "36 days")
	assert.Nil(t, gaps[0].Amount)
}

func TestAnomalyDetector_Duplicates(t *testing.T) {
	charge := txn(date(2024, time.March, 3), "Streaming Plus", 12.99, models.CategoryEntertainment)
	otherDay := charge
	otherDay.Date = date(2024, time.March, 4)
	otherAmount := charge
	otherAmount.Amount = otherAmount.Amount.Add(otherAmount.Amount)

	transactions := []models.Transaction{charge, charge, charge, otherDay, otherAmount}

	duplicates := anomaliesOfType(NewAnomalyDetector().Detect(transactions), models.AnomalyTypeDuplicate)

	require.Len(t, duplicates, 2)
	for _, duplicate := range duplicates {
		assert.Equal(t, date(2024, time.March, 3), duplicate.Date)
		assert.Equal(t, "12.99", duplicate.Amount.String())
	}
}

func TestAnomalyDetector_GroupedByRule(t *testing.T) {
	transactions := steadySpending(date(2024, time.January, 1), 40)
	transactions = append(transactions,
		txn(date(2024, time.March, 1), "Corner Market", 90, models.CategoryFoodDining),
		txn(date(2024, time.March, 1), "Corner Market", 90, models.CategoryFoodDining),
		txn(date(2024, time.March, 2), "Jewelry Store", 15000, models.CategoryShopping),
	)

	anomalies := NewAnomalyDetector().Detect(transactions)

	require.Len(t, anomalies, 3)
	assert.Equal(t, models.AnomalyTypeUnusualSpending, anomalies[0].Type)
	assert.Equal(t, models.AnomalyTypeMissingData, anomalies[1].Type)
	assert.Equal(t, models.AnomalyTypeDuplicate, anomalies[2].Type)
}

func TestAnomalyDetector_Empty(t *testing.T) {
	anomalies := NewAnomalyDetector().Detect(nil)
	assert.NotNil(t, anomalies)
	assert.Empty(t, anomalies)
}
