package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"fmt"
	"testing"

	"vendora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestZZCopySearchUsers(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := newTestServer(t)
	s.userRepo = mockRepo

	app.Use(func(c *fiber.Ctx) error {
		fmt.Printf("SERVER SAW: %s %q\n", c.Method(), c.OriginalURL())
		return c.Next()
	})
	app.Get("/api/users/search", s.SearchUsers)

	t.Run("ForwardsQueryTerms", func(t *testing.T) {
		mockRepo.On("Search", mock.Anything, "acme", "Austin").Return([]models.User{
			{ID: 1, Username: "Acme", City: "Austin"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/users/search?name=acme&city=Austin", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		_, _ = io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockRepo.AssertExpectations(t)

	})

	t.Run("EmptyTermsAreWildcards", func(t *testing.T) {
		mockRepo.On("Search", mock.Anything, "", "").Return([]models.User{
			{ID: 1, Username: "Acme"},
			{ID: 2, Username: "Globex"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/users/search", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		raw, _ := io.ReadAll(resp.Body)
		t.Logf("status=%d headers=%v body=%q", resp.StatusCode, resp.Header, raw)
		_ = json.Marshal
	})
}
