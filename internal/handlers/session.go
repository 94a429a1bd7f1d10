package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beverage_store/internal/services"
	"beverage_store/pkg/backendapi"
)

const sessionCookie = "cart_session"

// cartSessionID resolves the caller's session id from the X-Cart-Session
// header or the session cookie, issuing a fresh one when neither is set.
// The id scopes the cart and the session marker in redis.
func cartSessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Cart-Session"); id != "" {
		return id
	}
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

// errorStatus maps service and backend errors onto response codes. Auth
// failures must stay distinguishable so the client can redirect to login
// instead of offering a retry.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest
	case backendapi.IsAuthRequired(err):
		return http.StatusUnauthorized
	case backendapi.IsValidation(err):
		return http.StatusUnprocessableEntity
	case backendapi.IsNotFound(err):
		return http.StatusNotFound
	case backendapi.IsServerError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
