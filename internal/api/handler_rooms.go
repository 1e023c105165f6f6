package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resort-booking-backend/internal/calendar"
	"resort-booking-backend/internal/model"
)

// roomResponse carries a room type with its facility names.
type roomResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"pricePerNight"`
	Facilities    []string `json:"facilities"`
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]roomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = roomResponse{
			ID:            room.ID,
			Name:          room.Name,
			Description:   room.Description,
			Capacity:      room.Capacity,
			PricePerNight: room.PricePerNight,
			Facilities:    facilityNames(room.Facilities),
		}
	}
	respondOK(c, http.StatusOK, "Rooms retrieved", out)
}

// RoomCapacity handles GET /api/rooms/:room_id/capacity.
func (h *Handler) RoomCapacity(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}
	startDate, ok := dateQuery(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := dateQuery(c, "endDate")
	if !ok {
		return
	}

	report, err := h.store.RoomCapacityByDate(c.Request.Context(), roomID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Capacity data retrieved", report)
}

// BlockedDates handles GET /api/rooms/:room_id/blocked-dates.
func (h *Handler) BlockedDates(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	report, err := h.store.BlockedDates(c.Request.Context(), roomID, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blocked dates retrieved", report)
}

// CheckAvailability handles GET /api/rooms/:room_id/availability.
func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}
	checkIn, ok := dateQuery(c, "checkin")
	if !ok {
		return
	}
	checkOut, ok := dateQuery(c, "checkout")
	if !ok {
		return
	}

	report, err := h.store.FullyBookedWithin(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Availability checked", report)
}

func roomIDParam(c *gin.Context) (int64, bool) {
	roomID, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid room ID", nil)
		return 0, false
	}
	return roomID, true
}

func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		respondFail(c, http.StatusBadRequest, "Missing parameter: "+name, nil)
		return time.Time{}, false
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid date for "+name+", use YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return d, true
}

func facilityNames(facilities []model.RoomFacility) []string {
	names := make([]string, len(facilities))
	for i, f := range facilities {
		names[i] = f.Name
	}
	return names
}
