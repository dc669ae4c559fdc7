package models

import "time"

type User struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Gender        string         `json:"gender,omitempty"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      string         `gorm:"not null" json:"-"`
	Phone         string         `json:"phone,omitempty"`
	Verified      bool           `gorm:"default:false" json:"verified"`
	IsAdmin       bool           `gorm:"default:false" json:"isAdmin"`
	Addresses     []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"address"`
	WishlistItems []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist"`
	Cart          Cart           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders        []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Address is one entry in a user's address book.
type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Country   string    `gorm:"default:India" json:"country"`
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
