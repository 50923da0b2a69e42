package server

import (
	"context"
	"strings"
	"time"

	"vendora/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserResponse is a vendor row plus the rewritten absolute image URL.
// ImageURL is only built when the stored image is non-null, so the response
// never carries a base address glued onto a null value.
type UserResponse struct {
	models.User
	ImageURL *string `json:"image_url"`
}

func (s *Server) toUserResponses(users []models.User) []UserResponse {
	base := strings.TrimRight(s.config.BaseURL, "/")
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		r := UserResponse{User: u}
		if u.Image != nil {
			url := base + *u.Image
			r.ImageURL = &url
		}
		out = append(out, r)
	}
	return out
}

// RegisterUser handles POST /api/register (multipart form).
func (s *Server) RegisterUser(c *fiber.Ctx) error {
	username := c.FormValue("username")
	brandName := c.FormValue("brandName")
	contact := c.FormValue("contact")
	state := c.FormValue("state")
	city := c.FormValue("city")
	address := c.FormValue("address")

	// brandName is the only optional field.
	if username == "" || contact == "" || city == "" || state == "" || address == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("All fields are required"))
	}

	image, err := s.formImage(c)
	if err != nil {
		return models.RespondWithError(c, mapError(err), err)
	}

	user := &models.User{
		Username:  username,
		BrandName: brandName,
		Contact:   contact,
		State:     state,
		City:      city,
		Address:   address,
		Image:     image,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully!",
		"image":   image,
	})
}

// GetUsers handles GET /api/users.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(s.toUserResponses(users))
}

// SearchUsers handles GET /api/users/search?name=&city=.
// Empty terms behave as wildcards, so an empty search returns everyone.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	name := c.Query("name")
	city := c.Query("city")

	users, err := s.userRepo.Search(ctx, name, city)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(s.toUserResponses(users))
}

// GenerateBill handles GET /api/bill/:userId.
func (s *Server) GenerateBill(c *fiber.Ctx) error {
	id, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	bill, err := s.userRepo.GetBill(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapError(err), err)
	}

	return c.JSON(bill)
}
