package model

import "time"

// Room represents a bookable room type with a fixed number of identical units.
// Capacity is the maximum number of concurrent occupants per calendar day.
type Room struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Description   string    `gorm:"size:1024" json:"description"`
	Capacity      int       `gorm:"not null" json:"capacity"`
	PricePerNight float64   `gorm:"not null" json:"pricePerNight"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Associations
	Facilities []RoomFacility `gorm:"foreignKey:RoomID" json:"-"`
}

// RoomFacility is a single amenity attached to a room type.
type RoomFacility struct {
	ID     int64  `gorm:"primaryKey"`
	RoomID int64  `gorm:"index;not null"`
	Name   string `gorm:"size:128;not null"`
}
