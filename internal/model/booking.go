package model

import "time"

// BookingStatus is the admission outcome of a booking. A booking is classified
// exactly once at creation and the status is terminal thereafter.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusQueued    BookingStatus = "Queued"
)

// Booking occupies every date in [CheckIn, CheckOut); the checkout day itself
// is the turnover day and is not occupied. Both Confirmed and Queued bookings
// count toward occupancy.
type Booking struct {
	ID            int64         `gorm:"primaryKey"`
	PublicID      string        `gorm:"uniqueIndex;size:64;not null"`
	UserID        int64         `gorm:"index;not null"`
	RoomID        int64         `gorm:"index;not null"`
	CheckIn       time.Time     `gorm:"not null;index"`
	CheckOut      time.Time     `gorm:"not null;index"`
	Nights        int           `gorm:"not null"`
	Adults        int           `gorm:"not null;default:1"`
	Children      int           `gorm:"not null;default:0"`
	TotalPrice    float64       `gorm:"not null"`
	Status        BookingStatus `gorm:"size:16;not null;index"`
	QueuePosition *int          // set iff Status == StatusQueued
	CreatedAt     time.Time     `gorm:"not null"`

	// Associations
	Room Room `gorm:"constraint:OnDelete:CASCADE"`
	User User `gorm:"constraint:OnDelete:CASCADE"`
}
