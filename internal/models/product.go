package models

import "time"

// Product is an inventory item owned by exactly one vendor.
// UserID is a plain reference column: the contract accepts dangling owner
// references, so no foreign key constraint is declared.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Image       *string   `json:"image"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	IsPurchased bool      `gorm:"not null;default:false" json:"isPurchased"`
	UserID      uint      `gorm:"index" json:"userId"`
	CreatedAt   time.Time `json:"created_at"`
}
