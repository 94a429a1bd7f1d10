package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockChange is the exchange-style summary row shown in the ticker and
// the live market table. Derived from coefficient history, never persisted.
type StockChange struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	PriceChange      decimal.Decimal `json:"price_change"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
	OpenPrice        decimal.Decimal `json:"open_price"`
	HighPrice        decimal.Decimal `json:"high_price"`
	LowPrice         decimal.Decimal `json:"low_price"`
}

// PricePoint is one point of a price history graph series.
type PricePoint struct {
	Timestamp     time.Time       `json:"timestamp"`
	Coefficient   decimal.Decimal `json:"coefficient"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	PercentChange decimal.Decimal `json:"percent_change"`
	ChangeReason  ChangeReason    `json:"change_reason"`
}
