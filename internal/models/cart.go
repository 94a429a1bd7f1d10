package models

import "github.com/shopspring/decimal"

// CartEntry is one pending line item: a menu item plus quantity.
type CartEntry struct {
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// Cart holds what the customer intends to buy. Entries keep insertion
// order and are unique per menu item id. Mutations are pure in-memory
// operations; persistence is the cart service's concern.
type Cart struct {
	Entries []CartEntry `json:"entries"`
}

func (c *Cart) find(menuItemID string) int {
	for i := range c.Entries {
		if c.Entries[i].MenuItem.ID == menuItemID {
			return i
		}
	}
	return -1
}

// AddItem inserts a new entry, or increments the quantity of an existing
// one. Quantities below 1 default to 1.
func (c *Cart) AddItem(item MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := c.find(item.ID); i >= 0 {
		c.Entries[i].Quantity += quantity
		return
	}
	c.Entries = append(c.Entries, CartEntry{MenuItem: item, Quantity: quantity})
}

// RemoveItem deletes the entry for the given item id, no-op when absent.
func (c *Cart) RemoveItem(menuItemID string) {
	if i := c.find(menuItemID); i >= 0 {
		c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
	}
}

// UpdateQuantity sets an entry's quantity exactly. A quantity of zero or
// less removes the entry, same as RemoveItem.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(menuItemID)
		return
	}
	if i := c.find(menuItemID); i >= 0 {
		c.Entries[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.Entries = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

// TotalItems is the sum of quantities across all entries.
func (c *Cart) TotalItems() int {
	total := 0
	for _, e := range c.Entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice sums effective price times quantity over all entries.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.Entries {
		total = total.Add(e.MenuItem.EffectivePrice().Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

// OrderItems converts the cart into the order-creation payload, one line
// per entry in cart order.
func (c *Cart) OrderItems() []OrderItemCreate {
	items := make([]OrderItemCreate, 0, len(c.Entries))
	for _, e := range c.Entries {
		items = append(items, OrderItemCreate{MenuItemID: e.MenuItem.ID, Quantity: e.Quantity})
	}
	return items
}
