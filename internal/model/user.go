package model

import "time"

// User is a registered guest. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:256;not null" json:"email"`
	Phone        string    `gorm:"size:32" json:"phone"`
	DateOfBirth  string    `gorm:"size:10" json:"dob"`
	Address      string    `gorm:"size:512" json:"address"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}
