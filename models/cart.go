package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"uniqueIndex" json:"-"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CartTotal float64    `gorm:"default:0" json:"cartTotal"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	CartID     uint      `gorm:"index" json:"-"`
	ProductID  uint      `gorm:"not null" json:"productId"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	ItemsTotal float64   `gorm:"default:0" json:"itemsTotal"`
	AddedAt    time.Time `json:"addedAt"`
}

// WishlistItem marks a product as saved by a user. Membership is toggled,
// there is no separate add/remove pair.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"index:idx_wishlist_user_product,unique;not null" json:"-"`
	ProductID uint      `gorm:"index:idx_wishlist_user_product,unique;not null" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"-"`
}
