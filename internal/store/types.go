package store

import (
	"time"

	"resort-booking-backend/internal/booking"
	"resort-booking-backend/internal/model"
)

// CreateBookingParams is the input to the admission decision. UserID comes
// from the authenticated session, never from the request body.
type CreateBookingParams struct {
	UserID        int64
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Provider      string
	TransactionID string // optional; generated when empty
}

// CreateBookingResult reports the admission outcome.
type CreateBookingResult struct {
	BookingID     string              `json:"bookingId"`
	TransactionID string              `json:"transactionId"`
	Status        model.BookingStatus `json:"status"`
	QueuePosition *int                `json:"queuePosition"`
	TotalPrice    float64             `json:"totalPrice"`
}

// CapacityReport is the per-date occupancy ledger for a query window.
type CapacityReport struct {
	Capacity int                             `json:"capacity"`
	Dates    map[string]booking.DayOccupancy `json:"dates"`
}

// BlockedDatesReport lists every date at capacity across the whole horizon of
// bookings that have not yet checked out.
type BlockedDatesReport struct {
	BlockedDates []string `json:"blockedDates"`
	Capacity     int      `json:"capacity"`
}

// AvailabilityReport answers whether a candidate range contains fully booked
// dates.
type AvailabilityReport struct {
	IsFull           bool     `json:"isFull"`
	FullyBookedDates []string `json:"fullyBookedDates"`
	Capacity         int      `json:"capacity"`
}

// UserBooking is a booking row joined with its payment record, shaped for the
// guest's booking history.
type UserBooking struct {
	BookingID       string              `json:"bookingId"`
	RoomName        string              `json:"roomName"`
	CheckIn         time.Time           `json:"-"`
	CheckOut        time.Time           `json:"-"`
	Nights          int                 `json:"nights"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          model.BookingStatus `json:"status"`
	QueuePosition   *int                `json:"queuePosition"`
	CreatedAt       time.Time           `json:"createdAt"`
	TransactionID   string              `json:"transactionId"`
	PaymentProvider string              `json:"paymentProvider"`
}
