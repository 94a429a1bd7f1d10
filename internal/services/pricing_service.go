package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"beverage_store/internal/config"
	"beverage_store/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// PricingAPI is the slice of the backend client the aggregator needs.
type PricingAPI interface {
	GetMenu(ctx context.Context) ([]models.MenuItem, error)
	GetCoefficientHistory(ctx context.Context, itemID string) ([]models.CoefficientLog, error)
	GetPublicCoefficientHistory(ctx context.Context, itemID string) ([]models.CoefficientLog, error)
}

type PricingService interface {
	StockChanges(ctx context.Context) ([]models.StockChange, error)
	PriceSeries(ctx context.Context, itemID string) ([]models.PricePoint, error)
	AdminPriceSeries(ctx context.Context, itemID string) ([]models.PricePoint, error)
}

type pricingService struct {
	api PricingAPI
}

func NewPricingService(api PricingAPI) PricingService {
	return &pricingService{api: api}
}

// StockChanges builds the ticker/market-table summary for every active
// menu item. A failed or short history for one item degrades that row to
// zero change with the item's own price; it never aborts the batch.
func (s *pricingService) StockChanges(ctx context.Context) ([]models.StockChange, error) {
	items, err := s.api.GetMenu(ctx)
	if err != nil {
		return nil, err
	}

	changes := make([]models.StockChange, 0, len(items))
	for _, item := range items {
		if !item.Active() {
			continue
		}

		logs, err := s.api.GetPublicCoefficientHistory(ctx, item.ID)
		if err != nil {
			config.GetLogger().WithField("item_id", item.ID).Warnf("coefficient history unavailable: %v", err)
			changes = append(changes, flatStockChange(item))
			continue
		}
		changes = append(changes, buildStockChange(item, logs))
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Name != changes[j].Name {
			return changes[i].Name < changes[j].Name
		}
		return changes[i].ID < changes[j].ID
	})
	return changes, nil
}

// PriceSeries is the storefront graph series, built from the public
// history endpoint.
func (s *pricingService) PriceSeries(ctx context.Context, itemID string) ([]models.PricePoint, error) {
	logs, err := s.api.GetPublicCoefficientHistory(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return buildPriceSeries(logs), nil
}

// AdminPriceSeries is the authenticated variant used by the admin
// coefficient graph.
func (s *pricingService) AdminPriceSeries(ctx context.Context, itemID string) ([]models.PricePoint, error) {
	logs, err := s.api.GetCoefficientHistory(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return buildPriceSeries(logs), nil
}

// flatStockChange is the zero-change placeholder used when an item has no
// usable history.
func flatStockChange(item models.MenuItem) models.StockChange {
	price := item.EffectivePrice()
	return models.StockChange{
		ID:           item.ID,
		Name:         item.Name,
		CurrentPrice: price,
		OpenPrice:    price,
		HighPrice:    price,
		LowPrice:     price,
	}
}

// buildStockChange derives a summary row from an item's coefficient log.
// Current price and change come from the two most recent entries; open,
// high and low span the whole fetched window. Prices are computed from
// each entry's embedded snapshot, so later base-price edits do not
// rewrite history.
func buildStockChange(item models.MenuItem, logs []models.CoefficientLog) models.StockChange {
	if len(logs) < 2 {
		return flatStockChange(item)
	}

	sorted := make([]models.CoefficientLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	current := sorted[0].FinalPrice()
	previous := sorted[1].FinalPrice()
	change := current.Sub(previous)

	percent := decimal.Zero
	if previous.IsPositive() {
		percent = change.Div(previous).Mul(oneHundred)
	}

	open := sorted[len(sorted)-1].FinalPrice()
	high := sorted[0].FinalPrice()
	low := sorted[0].FinalPrice()
	for _, l := range sorted[1:] {
		price := l.FinalPrice()
		if price.GreaterThan(high) {
			high = price
		}
		if price.LessThan(low) {
			low = price
		}
	}

	return models.StockChange{
		ID:               item.ID,
		Name:             item.Name,
		CurrentPrice:     current,
		PriceChange:      change,
		PercentageChange: percent,
		OpenPrice:        open,
		HighPrice:        high,
		LowPrice:         low,
	}
}

// buildPriceSeries turns a raw, possibly unordered log into graph points
// sorted by timestamp ascending (stable, ties keep fetch order). Each
// point carries the percent change against the previous point, zero for
// the first point and whenever the previous price is not positive.
func buildPriceSeries(logs []models.CoefficientLog) []models.PricePoint {
	sorted := make([]models.CoefficientLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	points := make([]models.PricePoint, 0, len(sorted))
	prev := decimal.Zero
	for i, l := range sorted {
		price := l.FinalPrice()
		percent := decimal.Zero
		if i > 0 && prev.IsPositive() {
			percent = price.Sub(prev).Div(prev).Mul(oneHundred)
		}
		points = append(points, models.PricePoint{
			Timestamp:     l.Timestamp,
			Coefficient:   l.NewCoefficient,
			FinalPrice:    price,
			PercentChange: percent,
			ChangeReason:  l.ChangeReason,
		})
		prev = price
	}
	return points
}
