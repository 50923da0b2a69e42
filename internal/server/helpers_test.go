package server

import (
	"errors"
	"fmt"
	"testing"

	"vendora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "product ID", humanizeParam("productId"))
	assert.Equal(t, "orderId", humanizeParam("orderId"))
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", models.NewValidationError("bad input"), fiber.StatusBadRequest},
		{"NotFound", models.NewNotFoundError("User"), fiber.StatusNotFound},
		{"Internal", models.NewInternalError(assert.AnError), fiber.StatusInternalServerError},
		{"PlainError", errors.New("boom"), fiber.StatusInternalServerError},
		{"WrappedAppError", fmt.Errorf("lookup: %w", models.NewNotFoundError("Product")), fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapError(tt.err))
		})
	}
}
