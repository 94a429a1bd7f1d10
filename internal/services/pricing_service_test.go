package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"beverage_store/internal/models"
)

type fakePricingAPI struct {
	items       []models.MenuItem
	histories   map[string][]models.CoefficientLog
	failHistory map[string]bool
	menuErr     error
}

func (f *fakePricingAPI) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	if f.menuErr != nil {
		return nil, f.menuErr
	}
	return f.items, nil
}

func (f *fakePricingAPI) GetCoefficientHistory(ctx context.Context, itemID string) ([]models.CoefficientLog, error) {
	return f.GetPublicCoefficientHistory(ctx, itemID)
}

func (f *fakePricingAPI) GetPublicCoefficientHistory(ctx context.Context, itemID string) ([]models.CoefficientLog, error) {
	if f.failHistory[itemID] {
		return nil, errors.New("history fetch failed")
	}
	return f.histories[itemID], nil
}

func logEntry(itemID string, at time.Time, basePrice, prevCoeff, newCoeff float64) models.CoefficientLog {
	return models.CoefficientLog{
		ItemID:              itemID,
		Timestamp:           at,
		PreviousCoefficient: decimal.NewFromFloat(prevCoeff),
		NewCoefficient:      decimal.NewFromFloat(newCoeff),
		ChangeReason:        models.ReasonDecayed,
		MenuItem: models.MenuItem{
			ID:        itemID,
			BasePrice: decimal.NewFromFloat(basePrice),
		},
	}
}

func pricedItem(id, name string, basePrice, coefficient float64) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        name,
		BasePrice:   decimal.NewFromFloat(basePrice),
		Coefficient: decimal.NewFromFloat(coefficient),
		FinalPrice:  decimal.NewFromFloat(basePrice * coefficient),
	}
}

func TestStockChanges_PercentChangeFromTwoMostRecent(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	api := &fakePricingAPI{
		items: []models.MenuItem{pricedItem("x", "Latte", 10, 0.9)},
		histories: map[string][]models.CoefficientLog{
			"x": {
				logEntry("x", t0, 10, 1.0, 1.2),
				logEntry("x", t0.Add(time.Hour), 10, 1.2, 0.9),
			},
		},
	}

	changes, err := NewPricingService(api).StockChanges(context.Background())
	if err != nil {
		t.Fatalf("StockChanges failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}

	row := changes[0]
	if !row.CurrentPrice.Equal(decimal.NewFromFloat(9)) {
		t.Fatalf("expected current price 9, got %s", row.CurrentPrice)
	}
	if !row.PriceChange.Equal(decimal.NewFromFloat(-3)) {
		t.Fatalf("expected price change -3, got %s", row.PriceChange)
	}
	if !row.PercentageChange.Equal(decimal.NewFromFloat(-25)) {
		t.Fatalf("expected percent change -25, got %s", row.PercentageChange)
	}
}

func TestStockChanges_OpenHighLowSpanFullWindow(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	api := &fakePricingAPI{
		items: []models.MenuItem{pricedItem("x", "Latte", 10, 1.1)},
		histories: map[string][]models.CoefficientLog{
			// Deliberately unordered; the aggregator sorts.
			"x": {
				logEntry("x", t0.Add(2*time.Hour), 10, 1.5, 1.1),
				logEntry("x", t0, 10, 1.0, 0.8),
				logEntry("x", t0.Add(time.Hour), 10, 0.8, 1.5),
			},
		},
	}

	changes, err := NewPricingService(api).StockChanges(context.Background())
	if err != nil {
		t.Fatalf("StockChanges failed: %v", err)
	}

	row := changes[0]
	if !row.OpenPrice.Equal(decimal.NewFromFloat(8)) {
		t.Fatalf("expected open 8, got %s", row.OpenPrice)
	}
	if !row.HighPrice.Equal(decimal.NewFromFloat(15)) {
		t.Fatalf("expected high 15, got %s", row.HighPrice)
	}
	if !row.LowPrice.Equal(decimal.NewFromFloat(8)) {
		t.Fatalf("expected low 8, got %s", row.LowPrice)
	}
}

func TestStockChanges_ZeroPreviousPriceGuardsDivision(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	api := &fakePricingAPI{
		items: []models.MenuItem{pricedItem("x", "Latte", 0, 1.2)},
		histories: map[string][]models.CoefficientLog{
			"x": {
				logEntry("x", t0, 0, 1.0, 1.0),
				logEntry("x", t0.Add(time.Hour), 0, 1.0, 1.2),
			},
		},
	}

	changes, err := NewPricingService(api).StockChanges(context.Background())
	if err != nil {
		t.Fatalf("StockChanges failed: %v", err)
	}
	if !changes[0].PercentageChange.IsZero() {
		t.Fatalf("expected percent change 0 with zero previous price, got %s", changes[0].PercentageChange)
	}
}

func TestStockChanges_FetchFailureDegradesPerItem(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	api := &fakePricingAPI{
		items: []models.MenuItem{
			pricedItem("a", "Americano", 3, 1.0),
			pricedItem("b", "Latte", 10, 1.2),
		},
		histories: map[string][]models.CoefficientLog{
			"b": {
				logEntry("b", t0, 10, 1.0, 1.0),
				logEntry("b", t0.Add(time.Hour), 10, 1.0, 1.2),
			},
		},
		failHistory: map[string]bool{"a": true},
	}

	changes, err := NewPricingService(api).StockChanges(context.Background())
	if err != nil {
		t.Fatalf("one item's history failure must not abort the batch: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(changes))
	}

	degraded := changes[0] // "Americano" sorts first
	if degraded.ID != "a" {
		t.Fatalf("expected degraded row for item a first, got %s", degraded.ID)
	}
	if !degraded.PriceChange.IsZero() || !degraded.PercentageChange.IsZero() {
		t.Fatalf("expected zero-change placeholder, got %+v", degraded)
	}
	if !degraded.CurrentPrice.Equal(decimal.NewFromFloat(3)) {
		t.Fatalf("expected fallback to the item's own price, got %s", degraded.CurrentPrice)
	}
}

func TestStockChanges_ShortHistoryFallsBackToItemPrice(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	api := &fakePricingAPI{
		items: []models.MenuItem{pricedItem("x", "Latte", 10, 1.3)},
		histories: map[string][]models.CoefficientLog{
			"x": {logEntry("x", t0, 10, 1.0, 1.3)},
		},
	}

	changes, err := NewPricingService(api).StockChanges(context.Background())
	if err != nil {
		t.Fatalf("StockChanges failed: %v", err)
	}

	row := changes[0]
	if !row.PriceChange.IsZero() || !row.PercentageChange.IsZero() {
		t.Fatalf("expected zero change with a single log entry, got %+v", row)
	}
	if !row.CurrentPrice.Equal(decimal.NewFromFloat(13)) {
		t.Fatalf("expected current price from item, got %s", row.CurrentPrice)
	}
}

func TestStockChanges_SortedByNameAndSkipsInactive(t *testing.T) {
	inactive := false
	items := []models.MenuItem{
		pricedItem("c", "Mocha", 5, 1.0),
		pricedItem("a", "Americano", 3, 1.0),
		pricedItem("b", "Latte", 4, 1.0),
	}
	items[2].IsActive = &inactive

	api := &fakePricingAPI{items: items, histories: map[string][]models.CoefficientLog{}}

	changes, err := NewPricingService(api).StockChanges(context.Background())
	if err != nil {
		t.Fatalf("StockChanges failed: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected inactive item to be skipped, got %d rows", len(changes))
	}
	if changes[0].Name != "Americano" || changes[1].Name != "Mocha" {
		t.Fatalf("expected alphabetical order, got %s, %s", changes[0].Name, changes[1].Name)
	}
}

func TestStockChanges_MenuFailureAbortsBatch(t *testing.T) {
	api := &fakePricingAPI{menuErr: errors.New("backend unreachable")}
	if _, err := NewPricingService(api).StockChanges(context.Background()); err == nil {
		t.Fatal("expected menu fetch failure to surface")
	}
}

func TestPriceSeries_SortedAscendingWithPercentChain(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	api := &fakePricingAPI{
		histories: map[string][]models.CoefficientLog{
			"x": {
				logEntry("x", t0.Add(time.Hour), 10, 1.2, 0.9),
				logEntry("x", t0, 10, 1.0, 1.2),
			},
		},
	}

	points, err := NewPricingService(api).PriceSeries(context.Background(), "x")
	if err != nil {
		t.Fatalf("PriceSeries failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if !points[0].Timestamp.Before(points[1].Timestamp) {
		t.Fatal("expected points sorted by timestamp ascending")
	}
	if !points[0].PercentChange.IsZero() {
		t.Fatalf("expected first point percent change 0, got %s", points[0].PercentChange)
	}
	if !points[0].FinalPrice.Equal(decimal.NewFromFloat(12)) {
		t.Fatalf("expected first point price 12, got %s", points[0].FinalPrice)
	}
	if !points[1].PercentChange.Equal(decimal.NewFromFloat(-25)) {
		t.Fatalf("expected -25%% on second point, got %s", points[1].PercentChange)
	}
}

func TestPriceSeries_TiesKeepFetchOrder(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := logEntry("x", t0, 10, 1.0, 1.1)
	second := logEntry("x", t0, 10, 1.1, 1.2)
	api := &fakePricingAPI{
		histories: map[string][]models.CoefficientLog{"x": {first, second}},
	}

	points, err := NewPricingService(api).PriceSeries(context.Background(), "x")
	if err != nil {
		t.Fatalf("PriceSeries failed: %v", err)
	}
	if !points[0].Coefficient.Equal(first.NewCoefficient) {
		t.Fatal("stable sort must keep fetch order for equal timestamps")
	}
}
