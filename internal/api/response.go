package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-booking-backend/internal/booking"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondFail(c *gin.Context, status int, message string, data any) {
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message, Data: data})
}

// respondError maps a domain error onto the HTTP surface. Unknown errors are
// logged and reported as a generic internal error.
func respondError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var conflict *booking.ConflictError

	switch {
	case errors.As(err, &verr):
		respondFail(c, http.StatusBadRequest, verr.Reason, nil)
	case errors.As(err, &conflict):
		respondFail(c, http.StatusConflict,
			"Selected dates are fully booked. Please choose different dates.",
			gin.H{"fullyBookedDates": conflict.FullyBookedDates})
	case errors.Is(err, booking.ErrRoomNotFound):
		respondFail(c, http.StatusNotFound, "Room not found", nil)
	case errors.Is(err, booking.ErrUnauthenticated):
		respondFail(c, http.StatusUnauthorized, "Please login first", nil)
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondFail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
