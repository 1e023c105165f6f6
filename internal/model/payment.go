package model

import "time"

// Payment is the payment record paired with a booking. It is written in the
// same transaction as its booking, so a booking never exists without one.
type Payment struct {
	ID            int64     `gorm:"primaryKey"`
	BookingID     int64     `gorm:"uniqueIndex;not null"`
	TransactionID string    `gorm:"uniqueIndex;size:64;not null"`
	Provider      string    `gorm:"size:32;not null"`
	Amount        float64   `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`

	// Associations
	Booking Booking `gorm:"constraint:OnDelete:CASCADE"`
}
