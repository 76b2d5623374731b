package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"atrium/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", models.NewValidationError("bad"), fiber.StatusBadRequest},
		{"Not found", models.NewNotFoundError("Content", 1), fiber.StatusNotFound},
		{"Unauthorized", models.NewUnauthorizedError("nope"), fiber.StatusForbidden},
		{"Duplicate username", models.NewDuplicateUsernameError("bob"), fiber.StatusConflict},
		{"Invalid credentials", models.NewInvalidCredentialsError(), fiber.StatusUnauthorized},
		{"Internal", models.NewInternalError(assert.AnError), fiber.StatusInternalServerError},
		{"Plain error", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusForError(tt.err))
		})
	}
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "comment ID", humanizeParam("commentId"))
	assert.Equal(t, "slug", humanizeParam("slug"))
}

func TestParseID(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Valid", "/things/42", http.StatusOK},
		{"Zero", "/things/0", http.StatusBadRequest},
		{"Negative", "/things/-1", http.StatusBadRequest},
		{"Non-numeric", "/things/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
