// Package booking holds the pure availability and admission logic: per-date
// occupancy tallies, fully-booked date detection and the Confirmed/Queued
// classification. Nothing here touches storage; the store package feeds it
// rows and persists its decisions.
package booking

import (
	"sort"
	"time"

	"resort-booking-backend/internal/calendar"
	"resort-booking-backend/internal/model"
)

// DayOccupancy is the per-date ledger entry for a room.
// Available is deliberately not clamped at zero: a negative value signals
// over-admission and must stay visible.
type DayOccupancy struct {
	Booked    int  `json:"booked"`
	Available int  `json:"available"`
	IsFull    bool `json:"isFull"`
}

// Occupancy tallies booked units for every date in [windowStart, windowEnd).
// Dates a booking covers outside the window are not counted. Every window
// date is present in the result, including dates with zero bookings.
func Occupancy(capacity int, bookings []model.Booking, windowStart, windowEnd time.Time) (map[string]DayOccupancy, error) {
	days, err := calendar.Enumerate(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]int, len(days))
	for _, d := range days {
		tally[calendar.Format(d)] = 0
	}
	accumulate(tally, bookings, true)

	out := make(map[string]DayOccupancy, len(tally))
	for date, booked := range tally {
		out[date] = DayOccupancy{
			Booked:    booked,
			Available: capacity - booked,
			IsFull:    booked >= capacity,
		}
	}
	return out, nil
}

// FullDates returns the dates in [windowStart, windowEnd) whose tally has
// reached capacity, in chronological order. An empty result means every date
// in the window still has room.
func FullDates(capacity int, bookings []model.Booking, windowStart, windowEnd time.Time) ([]string, error) {
	occ, err := Occupancy(capacity, bookings, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	var full []string
	for date, day := range occ {
		if day.IsFull {
			full = append(full, date)
		}
	}
	sort.Strings(full)
	return full, nil
}

// BlockedDates tallies occupancy across the full span of every given booking,
// with no window bound, and returns each date whose tally has reached
// capacity, in chronological order. Callers decide the horizon by what they
// pass in; the store feeds it every booking that has not yet checked out.
func BlockedDates(capacity int, bookings []model.Booking) []string {
	tally := make(map[string]int)
	accumulate(tally, bookings, false)

	var blocked []string
	for date, booked := range tally {
		if booked >= capacity {
			blocked = append(blocked, date)
		}
	}
	sort.Strings(blocked)
	return blocked
}

// OverlapCount counts the bookings whose interval shares at least one day
// with [checkIn, checkOut). This is a count of bookings, not of dates, and is
// the input to Classify.
func OverlapCount(bookings []model.Booking, checkIn, checkOut time.Time) int {
	n := 0
	for _, b := range bookings {
		if calendar.Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			n++
		}
	}
	return n
}

// Classify decides the admission outcome from the room-wide overlap count.
func Classify(capacity, overlapCount int) model.BookingStatus {
	if overlapCount >= capacity {
		return model.StatusQueued
	}
	return model.StatusConfirmed
}

// accumulate adds one unit per booking per occupied date. When windowOnly is
// set, only dates already present in the tally map are counted.
func accumulate(tally map[string]int, bookings []model.Booking, windowOnly bool) {
	for _, b := range bookings {
		for d := calendar.Day(b.CheckIn); d.Before(calendar.Day(b.CheckOut)); d = d.AddDate(0, 0, 1) {
			key := calendar.Format(d)
			if windowOnly {
				if _, ok := tally[key]; !ok {
					continue
				}
			}
			tally[key]++
		}
	}
}
