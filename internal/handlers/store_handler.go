package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beverage_store/internal/services"
	"beverage_store/pkg/backendapi"
)

// StoreHandler serves the public storefront: menu, live ticker and price
// history graphs.
type StoreHandler struct {
	backend        *backendapi.Client
	pricingService services.PricingService
	tickerService  services.TickerService
}

func NewStoreHandler(
	backend *backendapi.Client,
	pricingService services.PricingService,
	tickerService services.TickerService,
) *StoreHandler {
	return &StoreHandler{
		backend:        backend,
		pricingService: pricingService,
		tickerService:  tickerService,
	}
}

func (h *StoreHandler) GetMenu(c *gin.Context) {
	items, err := h.backend.GetMenu(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *StoreHandler) GetMenuItem(c *gin.Context) {
	item, err := h.backend.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetTicker returns the cached stock-change snapshot; the ticker service
// refreshes it in the background so this never blocks on the backend.
func (h *StoreHandler) GetTicker(c *gin.Context) {
	changes, updatedAt := h.tickerService.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"changes":    changes,
		"updated_at": updatedAt,
	})
}

func (h *StoreHandler) GetPriceHistory(c *gin.Context) {
	points, err := h.pricingService.PriceSeries(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
