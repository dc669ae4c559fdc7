package models

import (
	"time"
)

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Category        string    `gorm:"not null;index" json:"category"`
	Description     string    `gorm:"not null" json:"description"`
	Price           float64   `gorm:"not null" json:"price"`
	DiscountedPrice float64   `gorm:"not null" json:"discountedPrice"`
	Images          []Image   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Stock           int       `gorm:"not null;default:0" json:"stock"`
	AvgRating       float64   `gorm:"default:0" json:"avgRating"`
	Reviews         []Review  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Image holds one product photo URL.
type Image struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	URL       string `gorm:"not null" json:"url"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"-"`
	UserID    string    `gorm:"not null" json:"userId"`
	Ratings   int       `gorm:"not null" json:"ratings"`
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
