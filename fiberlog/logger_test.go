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

func newTestApp(buf *bytes.Buffer, skip func(string) bool) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagMethod, TagPath, RequestID, TagResBody},
		Skip:   skip,
	}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).SendString("boom")
	})
	return app
}

func TestLogger(t *testing.T) {
	t.Run(`request logged with fields check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf, nil)
		req := httptest.NewRequest(fiber.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, "req-1", resp.Header.Get(HeaderRequestID))

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "info", entry["level"])
		require.Equal(t, "GET", entry[TagMethod])
		require.Equal(t, "/ok", entry[TagPath])
		require.Equal(t, float64(200), entry[TagStatus])
		require.Equal(t, "req-1", entry[RequestID])
		require.Equal(t, "req-1", entry[TagResBody])
	})

	t.Run(`request id generated check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf, nil)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.Nil(t, err)
		require.Len(t, resp.Header.Get(HeaderRequestID), 36)
	})

	t.Run(`error status logged as warning check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf, nil)
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
		require.Nil(t, err)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, float64(500), entry[TagStatus])
	})

	t.Run(`skip check`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf, func(path string) bool { return path == "/ok" })
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.Nil(t, err)
		require.NotEmpty(t, resp.Header.Get(HeaderRequestID))
		require.Equal(t, 0, buf.Len())
	})
}
