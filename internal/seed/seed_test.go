package seed

import (
	"testing"

	"vendora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return db
}

func TestRun(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{Vendors: 5, MaxProducts: 3, PurchasedRatio: 0.5}))

	var vendorCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&vendorCount).Error)
	assert.EqualValues(t, 5, vendorCount)

	// Every vendor gets at least one product, at most MaxProducts.
	var productCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	assert.GreaterOrEqual(t, productCount, int64(5))
	assert.LessOrEqual(t, productCount, int64(15))

	var orphans int64
	require.NoError(t, db.Model(&models.Product{}).
		Where("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans, "seeded products must reference seeded vendors")
}

func TestRunAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{}))

	var vendorCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&vendorCount).Error)
	assert.EqualValues(t, DefaultOptions().Vendors, vendorCount)
}

func TestBuildVendor(t *testing.T) {
	v := BuildVendor()

	assert.NotEmpty(t, v.Username)
	assert.NotEmpty(t, v.Contact)
	assert.NotEmpty(t, v.State)
	assert.NotEmpty(t, v.City)
	assert.NotEmpty(t, v.Address)
	assert.Nil(t, v.Image)
}

func TestBuildProduct(t *testing.T) {
	p := BuildProduct(42)

	assert.NotEmpty(t, p.Name)
	assert.Greater(t, p.Price, 0.0)
	assert.Greater(t, p.Quantity, 0)
	assert.EqualValues(t, 42, p.UserID)
	assert.False(t, p.IsPurchased)
}
