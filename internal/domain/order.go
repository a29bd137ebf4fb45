package domain

import (
	"time" // Order date

	"github.com/shopspring/decimal" // Exact decimal amounts for currency
)

// Order Model
type Order struct {
	ID         uint            `gorm:"primaryKey"`     // Primary key
	Product    string          `gorm:"not null"`       // Product name
	Amount     decimal.Decimal `gorm:"not null"`       // Order amount
	Date       time.Time       `gorm:"not null"`       // Creation date, set at insert time
	CustomerID uint            `gorm:"index;not null"` // Foreign key to Customer
}
