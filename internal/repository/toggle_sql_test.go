package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The toggle must be a single parameter-bound UPDATE with the negation done
// in SQL, never a read-modify-write round trip.
func TestTogglePurchaseStatement(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	repo := NewProductRepository(db)
	stmt := regexp.QuoteMeta(`UPDATE "products" SET "is_purchased"=NOT is_purchased WHERE id = $1`)

	t.Run("RowAffected", func(t *testing.T) {
		mock.ExpectExec(stmt).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.TogglePurchase(context.Background(), 7))
	})

	t.Run("ZeroRowsStillSucceeds", func(t *testing.T) {
		mock.ExpectExec(stmt).
			WithArgs(12345).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.TogglePurchase(context.Background(), 12345))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
