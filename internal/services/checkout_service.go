package services

import (
	"context"
	"errors"

	"beverage_store/internal/config"
	"beverage_store/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderAPI is the slice of the backend client checkout needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req models.OrderCreate) (*models.OrderSimple, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string) (*models.OrderSimple, error)
}

type checkoutService struct {
	carts  CartService
	orders OrderAPI
}

func NewCheckoutService(carts CartService, orders OrderAPI) CheckoutService {
	return &checkoutService{carts: carts, orders: orders}
}

// Checkout submits the session's cart as an order. On any submission
// failure the cart is left untouched and the backend error is returned
// verbatim; the cart clears only once the order exists. There is no
// partial state in between.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string) (*models.OrderSimple, error) {
	cart, err := s.carts.GetCart(sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order, err := s.orders.CreateOrder(ctx, models.OrderCreate{Items: cart.OrderItems()})
	if err != nil {
		return nil, err
	}

	if err := s.carts.ClearCart(sessionID); err != nil {
		// The order is already placed; a stale cart is recoverable, a
		// lost order is not.
		config.GetLogger().WithField("order_id", order.ID).Warnf("failed to clear cart after checkout: %v", err)
	}

	return order, nil
}
