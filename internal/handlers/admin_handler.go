package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beverage_store/internal/models"
	"beverage_store/internal/services"
	"beverage_store/pkg/backendapi"
)

// AdminHandler passes admin actions through to the backend: the orders
// board, order status transitions and menu management.
type AdminHandler struct {
	backend        *backendapi.Client
	pricingService services.PricingService
}

func NewAdminHandler(backend *backendapi.Client, pricingService services.PricingService) *AdminHandler {
	return &AdminHandler{backend: backend, pricingService: pricingService}
}

func (h *AdminHandler) GetOrders(c *gin.Context) {
	orders, err := h.backend.GetOrders(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.backend.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var req models.MenuItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.backend.CreateMenuItem(c.Request.Context(), req); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	var req models.MenuItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.backend.UpdateMenuItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.backend.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetCoefficientHistory serves the admin coefficient graph from the
// authenticated history endpoint.
func (h *AdminHandler) GetCoefficientHistory(c *gin.Context) {
	points, err := h.pricingService.AdminPriceSeries(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
