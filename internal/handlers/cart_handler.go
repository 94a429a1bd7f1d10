package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beverage_store/internal/models"
	"beverage_store/internal/services"
	"beverage_store/pkg/backendapi"
)

type CartHandler struct {
	cartService     services.CartService
	checkoutService services.CheckoutService
	backend         *backendapi.Client
}

func NewCartHandler(
	cartService services.CartService,
	checkoutService services.CheckoutService,
	backend *backendapi.Client,
) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		backend:         backend,
	}
}

func cartResponse(cart *models.Cart) gin.H {
	return gin.H{
		"entries":     cart.Entries,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(cartSessionID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// AddItem resolves the menu item from the backend and stores its snapshot
// in the cart, so line totals render without another round trip. An
// inactive or vanished item is rejected at checkout by the backend, not
// here.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item, err := h.backend.GetMenuItem(c.Request.Context(), req.MenuItemID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(cartSessionID(c), *item, req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cart, err := h.cartService.UpdateQuantity(cartSessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartService.RemoveItem(cartSessionID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(cartSessionID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *CartHandler) Checkout(c *gin.Context) {
	order, err := h.checkoutService.Checkout(c.Request.Context(), cartSessionID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *CartHandler) GetOrder(c *gin.Context) {
	order, err := h.backend.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
