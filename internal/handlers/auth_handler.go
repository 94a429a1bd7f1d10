package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beverage_store/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), cartSessionID(c), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  session.UserID,
		"email":    session.Email,
		"is_admin": session.IsAdmin,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(cartSessionID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.authService.Session(cartSessionID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdminRequired gates admin routes on the session marker. This is UI
// gating only; the backend enforces authorization on its own endpoints
// regardless of what the marker claims.
func (h *AuthHandler) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := h.authService.Session(cartSessionID(c))
		if err != nil || !session.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required: Please log in to continue"})
			return
		}
		c.Next()
	}
}
