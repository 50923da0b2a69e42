package repository

import (
	"context"

	"vendora/internal/cache"
	"vendora/internal/models"

	"gorm.io/gorm"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	ListByUser(ctx context.Context, userID uint) ([]models.Product, error)
	TogglePurchase(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a new ProductRepository implementation.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts one product row. The owner reference is not checked against
// the users table: a dangling userId is accepted silently, matching the
// existing contract.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUserProducts(ctx, product.UserID)
	return nil
}

// ListByUser returns all products owned by the given vendor, projecting the
// public columns only. An unknown vendor yields an empty slice, not an error.
func (r *productRepository) ListByUser(ctx context.Context, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := cache.CacheAside(ctx, cache.UserProductsKey(userID), &products, cache.ProductsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Select("id", "name", "image", "price", "quantity", "is_purchased").
			Where("user_id = ?", userID).
			Find(&products).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// TogglePurchase flips the purchase flag in SQL. Zero affected rows is not an
// error: toggling an unknown id is a silent no-op per the existing contract.
func (r *productRepository) TogglePurchase(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("is_purchased", gorm.Expr("NOT is_purchased")).Error; err != nil {
		return models.NewInternalError(err)
	}

	if cache.GetClient() != nil {
		var product models.Product
		if err := r.db.WithContext(ctx).
			Select("user_id").
			First(&product, id).Error; err == nil {
			cache.InvalidateUserProducts(ctx, product.UserID)
		}
	}
	return nil
}
