package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodwave/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- humanizeParam (pure function, no HTTP) ---

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"moodId", "mood ID"},
		{"requestId", "request ID"},
		{"feedId", "feed ID"},
		{"commentId", "comment ID"},
		{"something", "something"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

// --- parsePagination ---

func paginationApp(defaultLimit int) *fiber.App {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p := parsePagination(c, defaultLimit)
		return c.JSON(fiber.Map{"limit": p.Limit, "offset": p.Offset})
	})
	return app
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  float64
		wantOffset float64
	}{
		{"Defaults", "/items", 25, 0},
		{"Custom", "/items?limit=10&offset=30", 10, 30},
		{"CapsLimit", "/items?limit=5000", 100, 0},
		{"NegativeValues", "/items?limit=-1&offset=-7", 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := paginationApp(25)
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			var body map[string]float64
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.wantLimit, body["limit"])
			assert.Equal(t, tt.wantOffset, body["offset"])
		})
	}
}

// --- respondServiceError ---

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"NotFound", models.NewNotFoundError("Mood", 9), http.StatusNotFound},
		{"Unauthorized", models.NewUnauthorizedError("nope"), http.StatusForbidden},
		{"Internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"Plain", errors.New("unmapped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(c *fiber.Ctx) error {
				return respondServiceError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
