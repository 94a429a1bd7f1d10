package models

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderReceived  OrderStatus = "received"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItemCreate is one line of the order-creation payload. This is the
// only shape the order endpoint accepts.
type OrderItemCreate struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type OrderCreate struct {
	Items []OrderItemCreate `json:"items"`
}

type OrderItem struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	MenuItemID   string          `json:"menu_item_id"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
	Quantity     int             `json:"quantity"`
}

// OrderSimple is what order creation returns.
type OrderSimple struct {
	ID         string          `json:"id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     OrderStatus     `json:"status"`
}

type Order struct {
	OrderSimple
	Items []OrderItem `json:"items"`
}
