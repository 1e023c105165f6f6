package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resort-booking-backend/internal/booking"
	"resort-booking-backend/internal/calendar"
	"resort-booking-backend/internal/model"
	"resort-booking-backend/internal/store"
)

type createBookingRequest struct {
	RoomID        int64  `json:"roomId" binding:"required"`
	Checkin       string `json:"checkin" binding:"required,bookdate"`
	Checkout      string `json:"checkout" binding:"required,bookdate"`
	Adults        int    `json:"adults" binding:"omitempty,min=1"`
	Children      int    `json:"children" binding:"omitempty,min=0"`
	Provider      string `json:"provider" binding:"required"`
	TransactionID string `json:"transactionId"`
}

// CreateBooking handles POST /api/bookings: the admission entry point.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	if !h.providers.Valid(req.Provider) {
		respondError(c, booking.NewValidationError("unknown payment provider %q", req.Provider))
		return
	}

	checkIn, _ := calendar.Parse(req.Checkin)
	checkOut, _ := calendar.Parse(req.Checkout)

	adults := req.Adults
	if adults == 0 {
		adults = 1
	}

	result, err := h.store.CreateBooking(c.Request.Context(), time.Now().UTC(), store.CreateBookingParams{
		UserID:        currentUserID(c),
		RoomID:        req.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        adults,
		Children:      req.Children,
		Provider:      req.Provider,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Booking created successfully", result)
}

// userBookingResponse flattens a joined booking + payment row with calendar
// dates in wire format.
type userBookingResponse struct {
	BookingID       string              `json:"bookingId"`
	RoomName        string              `json:"roomName"`
	Checkin         string              `json:"checkin"`
	Checkout        string              `json:"checkout"`
	Nights          int                 `json:"nights"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          model.BookingStatus `json:"status"`
	QueuePosition   *int                `json:"queuePosition"`
	CreatedAt       time.Time           `json:"createdAt"`
	TransactionID   string              `json:"transactionId"`
	PaymentProvider string              `json:"paymentProvider"`
}

// GetUserBookings handles GET /api/bookings.
func (h *Handler) GetUserBookings(c *gin.Context) {
	rows, err := h.store.ListUserBookings(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]userBookingResponse, len(rows))
	for i, r := range rows {
		out[i] = userBookingResponse{
			BookingID:       r.BookingID,
			RoomName:        r.RoomName,
			Checkin:         calendar.Format(r.CheckIn),
			Checkout:        calendar.Format(r.CheckOut),
			Nights:          r.Nights,
			TotalPrice:      r.TotalPrice,
			Status:          r.Status,
			QueuePosition:   r.QueuePosition,
			CreatedAt:       r.CreatedAt,
			TransactionID:   r.TransactionID,
			PaymentProvider: r.PaymentProvider,
		}
	}
	respondOK(c, http.StatusOK, "Bookings retrieved", out)
}
