package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	require.NotNil(t, GetClient(), "miniredis should be reachable")
	t.Cleanup(func() { client = nil })
	return mr
}

type vendorRow struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func TestGetSetJSONRoundtrip(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	in := []vendorRow{{ID: 1, Username: "Acme"}, {ID: 2, Username: "Globex"}}
	require.NoError(t, SetJSON(ctx, UsersKey(), in, UserListTTL))

	var out []vendorRow
	found, err := GetJSON(ctx, UsersKey(), &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGetJSONMiss(t *testing.T) {
	setupTestRedis(t)

	var out []vendorRow
	found, err := GetJSON(context.Background(), "nope", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out)
}

func TestCacheAside(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *[]vendorRow) func() error {
		return func() error {
			fetches++
			*dest = []vendorRow{{ID: 1, Username: "Acme"}}
			return nil
		}
	}

	t.Run("FetchesOnceThenServesFromCache", func(t *testing.T) {
		var first []vendorRow
		require.NoError(t, CacheAside(ctx, UsersKey(), &first, UserListTTL, fetch(&first)))
		assert.Equal(t, 1, fetches)

		var second []vendorRow
		require.NoError(t, CacheAside(ctx, UsersKey(), &second, UserListTTL, fetch(&second)))
		assert.Equal(t, 1, fetches, "second read should hit the cache")
		assert.Equal(t, first, second)
	})

	t.Run("InvalidationForcesRefetch", func(t *testing.T) {
		InvalidateUsers(ctx)

		var rows []vendorRow
		require.NoError(t, CacheAside(ctx, UsersKey(), &rows, UserListTTL, fetch(&rows)))
		assert.Equal(t, 2, fetches)
	})
}

func TestCacheAsideExpiry(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	fetches := 0
	var rows []vendorRow
	fetch := func() error {
		fetches++
		rows = []vendorRow{{ID: 7, Username: "Initech"}}
		return nil
	}

	require.NoError(t, CacheAside(ctx, UserProductsKey(7), &rows, ProductsTTL, fetch))
	mr.FastForward(ProductsTTL + time.Second)

	require.NoError(t, CacheAside(ctx, UserProductsKey(7), &rows, ProductsTTL, fetch))
	assert.Equal(t, 2, fetches, "expired entry should be refetched")
}

func TestInvalidateUserProducts(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserProductsKey(3), []vendorRow{{ID: 3}}, ProductsTTL))
	require.True(t, mr.Exists(UserProductsKey(3)))

	InvalidateUserProducts(ctx, 3)
	assert.False(t, mr.Exists(UserProductsKey(3)))
}

func TestNilClientDegradesGracefully(t *testing.T) {
	client = nil
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UsersKey(), []vendorRow{{ID: 1}}, UserListTTL))

	var out []vendorRow
	found, err := GetJSON(ctx, UsersKey(), &out)
	require.NoError(t, err)
	assert.False(t, found)

	fetches := 0
	require.NoError(t, CacheAside(ctx, UsersKey(), &out, UserListTTL, func() error {
		fetches++
		out = []vendorRow{{ID: 1, Username: "Acme"}}
		return nil
	}))
	assert.Equal(t, 1, fetches, "uncached mode always fetches")

	// Invalidation on a nil client is a no-op, not a panic.
	InvalidateUsers(ctx)
}

func TestInitRedisUnreachableLeavesNilClient(t *testing.T) {
	InitRedis("127.0.0.1:1")
	assert.Nil(t, GetClient())
}

func TestInitRedisAcceptsURLScheme(t *testing.T) {
	mr := miniredis.RunT(t)
	InitRedis("redis://" + mr.Addr())
	t.Cleanup(func() { client = nil })
	assert.NotNil(t, GetClient())
}
