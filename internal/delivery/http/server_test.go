package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/horecaseek-service/internal/pkg/errors"
)

func TestCustomErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler(zap.NewNop()),
	})
	app.Get("/app-error", func(c *fiber.Ctx) error {
		return apperrors.ErrListingNotFound
	})
	app.Get("/fiber-error", func(c *fiber.Ctx) error {
		return fiber.ErrTeapot
	})
	app.Get("/plain-error", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	t.Run("app error keeps its own code and status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/app-error", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "LISTING_NOT_FOUND", body.Error.Code)
	})

	t.Run("fiber error keeps its status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/fiber-error", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	})

	t.Run("anything else is a 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/plain-error", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
