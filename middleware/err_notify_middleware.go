package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "scheduler-backend/models/api"
)

type errNotification struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify отправляет на addr уведомление о каждом ответе с кодом 5xx
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		body := c.Response().Body()
		var data apimodels.ErrorResponse
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		msg := data.Error
		if msg == "" {
			msg = string(body)
		}

		path := strings.Clone(c.OriginalURL())
		if r := c.Route(); r != nil {
			path = r.Path
		}
		notification := errNotification{
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  msg,
		}
		go func() {
			payload, marshalErr := json.Marshal(notification)
			if marshalErr != nil {
				return
			}
			resp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			_ = resp.Body.Close()
		}()

		return err
	}
}
