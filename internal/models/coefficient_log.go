package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeReason is the cause of a coefficient update.
type ChangeReason string

const (
	ReasonOrdered      ChangeReason = "ordered"
	ReasonDecayed      ChangeReason = "decayed"
	ReasonManualUpdate ChangeReason = "manual_update"
	ReasonCreated      ChangeReason = "created"
)

// CoefficientLog is one immutable coefficient change record. The backend
// embeds a snapshot of the menu item as it was at change time, so
// historical prices stay correct even if the base price is edited later.
type CoefficientLog struct {
	ID                  string          `json:"id"`
	ItemID              string          `json:"item_id"`
	Timestamp           time.Time       `json:"timestamp"`
	PreviousCoefficient decimal.Decimal `json:"previous_coefficient"`
	NewCoefficient      decimal.Decimal `json:"new_coefficient"`
	ChangeReason        ChangeReason    `json:"change_reason"`
	MenuItem            MenuItem        `json:"menu_item"`
}

// FinalPrice is the price implied by this log entry, computed from the
// embedded snapshot's base price rather than a live item lookup.
func (l *CoefficientLog) FinalPrice() decimal.Decimal {
	return l.MenuItem.BasePrice.Mul(l.NewCoefficient)
}
