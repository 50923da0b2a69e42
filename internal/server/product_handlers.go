package server

import (
	"context"
	"strconv"
	"time"

	"vendora/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ProductResponse projects the public product columns. The owner reference
// is implicit in the route and not repeated per row.
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	IsPurchased bool    `json:"isPurchased"`
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Image:       p.Image,
			Price:       p.Price,
			Quantity:    p.Quantity,
			IsPurchased: p.IsPurchased,
		})
	}
	return out
}

// AddProduct handles POST /api/products (multipart form).
func (s *Server) AddProduct(c *fiber.Ctx) error {
	name := c.FormValue("name")
	price := c.FormValue("price")
	quantity := c.FormValue("quantity")
	userID := c.FormValue("userId")

	if name == "" || price == "" || quantity == "" || userID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("All fields are required"))
	}

	priceVal, priceErr := strconv.ParseFloat(price, 64)
	quantityVal, quantityErr := strconv.Atoi(quantity)
	if priceErr != nil || quantityErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Price and quantity must be numbers"))
	}

	// The owner is not checked for existence; a dangling reference is
	// accepted silently per the contract. Only the id format is parsed.
	ownerID, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	image, err := s.formImage(c)
	if err != nil {
		return models.RespondWithError(c, mapError(err), err)
	}

	product := &models.Product{
		Name:     name,
		Image:    image,
		Price:    priceVal,
		Quantity: quantityVal,
		UserID:   uint(ownerID),
	}
	if err := s.productRepo.Create(c.Context(), product); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added successfully!",
		"image":   image,
	})
}

// GetUserProducts handles GET /api/users/:userId/products.
// Any caller may query any vendor's products; there is no auth in this
// contract. An unknown vendor and a vendor with zero products are
// indistinguishable: both yield an empty array.
func (s *Server) GetUserProducts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	products, err := s.productRepo.ListByUser(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(toProductResponses(products))
}

// TogglePurchase handles PUT /api/products/:productId/toggle-purchase.
// Toggling an unknown id affects zero rows and still reports success.
func (s *Server) TogglePurchase(c *fiber.Ctx) error {
	productID, err := s.parseID(c, "productId")
	if err != nil {
		return nil
	}

	if err := s.productRepo.TogglePurchase(c.Context(), productID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message": "Purchase status toggled successfully",
	})
}
