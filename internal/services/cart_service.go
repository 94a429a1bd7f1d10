package services

import (
	"time"

	"beverage_store/internal/models"
)

// CartStorage is the durable store behind the cart, satisfied by the
// redis client.
type CartStorage interface {
	SaveCart(sessionID string, cart *models.Cart, ttl time.Duration) error
	GetCart(sessionID string) (*models.Cart, error)
	DeleteCart(sessionID string) error
}

type CartService interface {
	GetCart(sessionID string) (*models.Cart, error)
	AddItem(sessionID string, item models.MenuItem, quantity int) (*models.Cart, error)
	RemoveItem(sessionID, menuItemID string) (*models.Cart, error)
	UpdateQuantity(sessionID, menuItemID string, quantity int) (*models.Cart, error)
	ClearCart(sessionID string) error
}

type cartService struct {
	storage CartStorage
	ttl     time.Duration
}

func NewCartService(storage CartStorage, ttl time.Duration) CartService {
	return &cartService{storage: storage, ttl: ttl}
}

// mutate loads the session's cart, applies fn, and writes the whole cart
// back in the same call. Every mutation persists immediately; a storage
// failure surfaces to the caller so no change is silently dropped.
func (s *cartService) mutate(sessionID string, fn func(cart *models.Cart)) (*models.Cart, error) {
	cart, err := s.storage.GetCart(sessionID)
	if err != nil {
		return nil, err
	}

	fn(cart)

	if err := s.storage.SaveCart(sessionID, cart, s.ttl); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) GetCart(sessionID string) (*models.Cart, error) {
	return s.storage.GetCart(sessionID)
}

func (s *cartService) AddItem(sessionID string, item models.MenuItem, quantity int) (*models.Cart, error) {
	return s.mutate(sessionID, func(cart *models.Cart) {
		cart.AddItem(item, quantity)
	})
}

func (s *cartService) RemoveItem(sessionID, menuItemID string) (*models.Cart, error) {
	return s.mutate(sessionID, func(cart *models.Cart) {
		cart.RemoveItem(menuItemID)
	})
}

func (s *cartService) UpdateQuantity(sessionID, menuItemID string, quantity int) (*models.Cart, error) {
	return s.mutate(sessionID, func(cart *models.Cart) {
		cart.UpdateQuantity(menuItemID, quantity)
	})
}

func (s *cartService) ClearCart(sessionID string) error {
	_, err := s.mutate(sessionID, func(cart *models.Cart) {
		cart.Clear()
	})
	return err
}
