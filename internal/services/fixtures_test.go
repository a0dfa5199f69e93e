package services

import (
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func txn(on time.Time, description string, amount float64, category string) models.Transaction {
	return models.Transaction{
		Date:        on,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
	}
}

// rentStatement is three identical monthly rent payments plus a few one-off purchases
func rentStatement() []models.Transaction {
	return []models.Transaction{
		txn(date(2024, time.January, 1), "Rent", 8000, models.CategoryHousing),
		txn(date(2024, time.January, 5), "Starbucks Coffee", 6.5, models.CategoryFoodDining),
		txn(date(2024, time.February, 1), "Rent", 8000, models.CategoryHousing),
		txn(date(2024, time.February, 9), "Amazon Marketplace", 42.99, models.CategoryShopping),
		txn(date(2024, time.March, 1), "Rent", 8000, models.CategoryHousing),
		txn(date(2024, time.March, 3), "Shell Gas Station", 55, models.CategoryTransportation),
	}
}

const sampleCSV = `Date,Description,Amount
2024-01-01,Rent Payment,2000.00
2024-01-03,Starbucks Coffee,5.75
2024-01-05,Netflix Subscription,15.49
2024-01-12,Shell Gas Station,48.20
2024-02-01,Rent Payment,2000.00
2024-02-05,Netflix Subscription,15.49
2024-02-14,Amazon Marketplace,89.99
2024-02-20,Uber trip,23.10
2024-03-01,Rent Payment,2000.00
2024-03-05,Netflix Subscription,15.49
2024-03-11,CVS Pharmacy,31.00
2024-03-18,Starbucks Coffee,8.25
`
