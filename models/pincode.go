package models

type DeliveryFlag string

const (
	DeliveryAvailable   DeliveryFlag = "Delivery"
	DeliveryUnavailable DeliveryFlag = "Non Delivery"
)

// Pincode is a static reference row mapping a postal code to deliverability.
type Pincode struct {
	ID       uint         `gorm:"primaryKey" json:"-"`
	Pincode  string       `gorm:"index;not null" json:"pincode"`
	Delivery DeliveryFlag `gorm:"type:VARCHAR(20);not null" json:"delivery"`
	City     string       `gorm:"not null" json:"city"`
	State    string       `gorm:"not null" json:"state"`
}
