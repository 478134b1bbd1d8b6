package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagMethod, TagPath, TagStatus, TagResBody, "unknown"},
	}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/file", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send([]byte("%PDF-1.3"))
	})

	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "bad"})
	})

	t.Run("json response check", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "GET", entry[TagMethod])
		require.Equal(t, "/ok", entry[TagPath])
		require.EqualValues(t, 200, entry[TagStatus])
		require.Equal(t, `{"status":"ok"}`, entry[TagResBody])
		require.Equal(t, "info", entry["level"])
		require.NotContains(t, entry, "unknown")
	})
	t.Run("binary response check", func(t *testing.T) {
		buf.Reset()
		_, err := app.Test(httptest.NewRequest("GET", "/file", nil))
		require.NoError(t, err)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.NotContains(t, entry, TagResBody)
	})
	t.Run("error status check", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
	})
}
