package server

import (
	"errors"
	"io"

	"vendora/internal/models"
	"vendora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "userId" -> "user ID", "productId" -> "product ID".
func humanizeParam(param string) string {
	switch param {
	case "userId":
		return "user ID"
	case "productId":
		return "product ID"
	default:
		return param
	}
}

// mapError translates an AppError code into an HTTP status.
func mapError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}

// formImage extracts the optional "image" multipart file and persists it,
// returning the public URL or nil when no file was attached. A validation
// error from the upload service is returned as-is for a 400 response.
func (s *Server) formImage(c *fiber.Ctx) (*string, error) {
	file, err := c.FormFile(service.UploadFieldName)
	if err != nil {
		// The image is always optional.
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}

	url, err := s.uploads.SaveImage(service.SaveImageInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return nil, err
	}
	return &url, nil
}
