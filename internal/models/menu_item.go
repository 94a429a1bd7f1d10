package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuItem is a beverage as served by the pricing backend. Price and
// coefficient fields are decimals validated at the JSON boundary; the
// backend is known to send them as numbers or as strings depending on
// version, and decimal.Decimal accepts both.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Coefficient decimal.Decimal `json:"coefficient"`
	FinalPrice  decimal.Decimal `json:"final_price"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// Active treats a missing is_active field as active.
func (m *MenuItem) Active() bool {
	return m.IsActive == nil || *m.IsActive
}

// EffectivePrice is the price currently charged for the item. When base
// price and coefficient are both positive it is recomputed from them, so
// a stale server-side final_price cannot disagree with the coefficient on
// display. Otherwise the server-sent final_price is trusted verbatim.
func (m *MenuItem) EffectivePrice() decimal.Decimal {
	if m.BasePrice.IsPositive() && m.Coefficient.IsPositive() {
		return m.BasePrice.Mul(m.Coefficient)
	}
	return m.FinalPrice
}

type MenuItemCreate struct {
	Name       string          `json:"name" binding:"required"`
	CategoryID string          `json:"category_id" binding:"required"`
	BasePrice  decimal.Decimal `json:"base_price"`
}

type MenuItemUpdate struct {
	Name        *string          `json:"name,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	Coefficient *decimal.Decimal `json:"coefficient,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// MenuPage covers both observed /menu response shapes: older backends
// return a bare array, newer ones a pagination envelope.
type MenuPage struct {
	Items    []MenuItem `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Pages    int        `json:"pages"`
}

func (p *MenuPage) UnmarshalJSON(data []byte) error {
	var items []MenuItem
	if err := json.Unmarshal(data, &items); err == nil {
		p.Items = items
		p.Total = len(items)
		p.Page = 1
		p.Pages = 1
		p.PageSize = len(items)
		return nil
	}

	type envelope MenuPage
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*p = MenuPage(env)
	return nil
}
