// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"vendora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data is created.
type Options struct {
	Vendors        int
	MaxProducts    int
	PurchasedRatio float64
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Vendors:        10,
		MaxProducts:    8,
		PurchasedRatio: 0.3,
	}
}

// Run populates the database with demo vendors and their products.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.Vendors <= 0 {
		opts.Vendors = DefaultOptions().Vendors
	}
	if opts.MaxProducts <= 0 {
		opts.MaxProducts = DefaultOptions().MaxProducts
	}

	for i := 0; i < opts.Vendors; i++ {
		user := BuildVendor()
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed vendor: %w", err)
		}

		for j := 0; j < r.Intn(opts.MaxProducts)+1; j++ {
			product := BuildProduct(user.ID)
			product.IsPurchased = r.Float64() < opts.PurchasedRatio
			if err := db.Create(product).Error; err != nil {
				return fmt.Errorf("failed to seed product: %w", err)
			}
		}
	}

	return nil
}

// BuildVendor constructs an unpersisted vendor with realistic fake data.
func BuildVendor() *models.User {
	return &models.User{
		Username:  gofakeit.Name(),
		BrandName: gofakeit.Company(),
		Contact:   gofakeit.Phone(),
		State:     gofakeit.State(),
		City:      gofakeit.City(),
		Address:   gofakeit.Street(),
	}
}

// BuildProduct constructs an unpersisted product owned by the given vendor.
func BuildProduct(userID uint) *models.Product {
	return &models.Product{
		Name:     gofakeit.ProductName(),
		Price:    gofakeit.Price(1, 500),
		Quantity: gofakeit.Number(1, 50),
		UserID:   userID,
	}
}
