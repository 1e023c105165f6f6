package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-booking-backend/internal/auth"
	"resort-booking-backend/internal/payment"
	"resort-booking-backend/internal/store"
)

const userIDKey = "userID"

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store      store.Store
	sessions   *auth.Sessions
	providers  *payment.Registry
	bcryptCost int
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, sessions *auth.Sessions, providers *payment.Registry, bcryptCost int) *Handler {
	return &Handler{
		store:      s,
		sessions:   sessions,
		providers:  providers,
		bcryptCost: bcryptCost,
	}
}

// RequireAuth resolves the bearer token into a user id before the handler
// runs. Requests without a live session never reach the booking engine.
func (h *Handler) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		respondFail(c, http.StatusUnauthorized, "Please login first", nil)
		return
	}

	userID, ok := h.sessions.Resolve(strings.TrimPrefix(header, "Bearer "))
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Please login first", nil)
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID reads the user id RequireAuth stored on the context.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
