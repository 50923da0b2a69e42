// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"vendora/internal/cache"
	"vendora/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for vendors.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	Search(ctx context.Context, name, city string) ([]models.User, error)
	GetBill(ctx context.Context, id uint) (*models.Bill, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUsers(ctx)
	return nil
}

// List returns every vendor row in insertion order (no explicit ORDER BY).
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := cache.CacheAside(ctx, cache.UsersKey(), &users, cache.UserListTTL, func() error {
		if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Search matches vendors whose username or brand name contains name
// (case-insensitive) and whose city contains city. Empty terms degenerate to
// match-all, so an empty search returns the full list.
func (r *userRepository) Search(ctx context.Context, name, city string) ([]models.User, error) {
	var users []models.User
	namePattern := "%" + strings.ToLower(name) + "%"
	cityPattern := "%" + city + "%"

	if err := r.db.WithContext(ctx).
		Where("(LOWER(username) LIKE ? OR LOWER(brand_name) LIKE ?) AND city LIKE ?",
			namePattern, namePattern, cityPattern).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// GetBill projects the dispatch summary for one vendor. Address is the
// state and city joined with a comma; the street address column is excluded.
func (r *userRepository) GetBill(ctx context.Context, id uint) (*models.Bill, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Select("username", "state", "city").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}

	return &models.Bill{
		Username: user.Username,
		Address:  user.State + ", " + user.City,
	}, nil
}
