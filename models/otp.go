package models

import "time"

// EmailOTP is the single live verification code for an email address. Sending
// a new code overwrites the previous one; verification or observed expiry
// deletes the row, and a background sweep clears anything left behind.
type EmailOTP struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	OTP       string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
