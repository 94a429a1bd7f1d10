package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"beverage_store/internal/models"
)

// memCartStorage emulates the redis cart store, serializing on every
// write so tests exercise the same persist/reload path.
type memCartStorage struct {
	data    map[string][]byte
	saves   int
	saveErr error
}

func newMemCartStorage() *memCartStorage {
	return &memCartStorage{data: map[string][]byte{}}
}

func (m *memCartStorage) SaveCart(sessionID string, cart *models.Cart, ttl time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	m.data[sessionID] = jsonData
	m.saves++
	return nil
}

func (m *memCartStorage) GetCart(sessionID string) (*models.Cart, error) {
	val, ok := m.data[sessionID]
	if !ok {
		return &models.Cart{}, nil
	}
	var cart models.Cart
	if err := json.Unmarshal(val, &cart); err != nil {
		return &models.Cart{}, nil
	}
	return &cart, nil
}

func (m *memCartStorage) DeleteCart(sessionID string) error {
	delete(m.data, sessionID)
	return nil
}

func cartItem(id, name string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, FinalPrice: decimal.NewFromFloat(price)}
}

func TestCartService_MutationsPersistAcrossReload(t *testing.T) {
	storage := newMemCartStorage()
	svc := NewCartService(storage, time.Hour)

	if _, err := svc.AddItem("s1", cartItem("a", "Latte", 4.50), 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := svc.AddItem("s1", cartItem("a", "Latte", 4.50), 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	// A second service over the same storage sees the persisted state.
	reloaded := NewCartService(storage, time.Hour)
	cart, err := reloaded.GetCart("s1")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(cart.Entries) != 1 || cart.Entries[0].Quantity != 3 {
		t.Fatalf("expected one entry with quantity 3 after reload, got %+v", cart.Entries)
	}
	expected := decimal.NewFromFloat(13.50)
	if !cart.TotalPrice().Equal(expected) {
		t.Fatalf("expected total %s, got %s", expected, cart.TotalPrice())
	}
}

func TestCartService_EveryMutationWrites(t *testing.T) {
	storage := newMemCartStorage()
	svc := NewCartService(storage, time.Hour)

	svc.AddItem("s1", cartItem("a", "Latte", 4.50), 1)
	svc.UpdateQuantity("s1", "a", 5)
	svc.RemoveItem("s1", "a")
	svc.ClearCart("s1")

	if storage.saves != 4 {
		t.Fatalf("expected 4 persisted writes, got %d", storage.saves)
	}
}

func TestCartService_StorageFailureSurfaces(t *testing.T) {
	storage := newMemCartStorage()
	storage.saveErr = errors.New("redis down")
	svc := NewCartService(storage, time.Hour)

	if _, err := svc.AddItem("s1", cartItem("a", "Latte", 4.50), 1); err == nil {
		t.Fatal("expected storage failure to surface, mutation must not be silently dropped")
	}
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	storage := newMemCartStorage()
	svc := NewCartService(storage, time.Hour)

	svc.AddItem("s1", cartItem("a", "Latte", 4.50), 1)
	svc.AddItem("s2", cartItem("b", "Mocha", 5.00), 2)

	cart1, _ := svc.GetCart("s1")
	cart2, _ := svc.GetCart("s2")
	if cart1.TotalItems() != 1 || cart2.TotalItems() != 2 {
		t.Fatalf("sessions leaked into each other: %d, %d", cart1.TotalItems(), cart2.TotalItems())
	}
}

func TestCartService_ClearCartEmptiesAndPersists(t *testing.T) {
	storage := newMemCartStorage()
	svc := NewCartService(storage, time.Hour)

	svc.AddItem("s1", cartItem("a", "Latte", 4.50), 2)
	if err := svc.ClearCart("s1"); err != nil {
		t.Fatalf("ClearCart failed: %v", err)
	}

	cart, err := svc.GetCart("s1")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart.Entries)
	}
}
