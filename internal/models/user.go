// Package models contains data structures for the application's domain models.
package models

import "time"

// User is a registered vendor with contact and location details.
// Users are created through registration and never updated or deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	BrandName string    `json:"brandName"`
	Contact   string    `gorm:"not null" json:"contact"`
	State     string    `gorm:"not null" json:"state"`
	City      string    `gorm:"not null" json:"city"`
	Address   string    `gorm:"not null" json:"address"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
