package middleware

import (
	"github.com/gofiber/fiber/v2"
	apimodels "scheduler-backend/models/api"
)

// NotFound подключается последним и отвечает на все незарегистрированные маршруты
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Not found"))
	}
}
