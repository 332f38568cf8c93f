package api

import (
	"github.com/gofiber/fiber/v2"
	apimodels "scheduler-backend/models/api"
)

const (
	rootMessage  = "Scheduler backend is running ✅"
	helloMessage = "Hello from the scheduler backend 👋"
)

func InitServiceRouters(app *fiber.App) {
	app.Get("/healthz", healthz)
	app.Get("/", root)
}

func InitHelloRouters(api fiber.Router) {
	api.Get("hello", hello)
}

// @Summary Проверка доступности
// @Tags Сервис
// @Description Не обращается к хранилищу
// @Success 200 {object} apimodels.HealthResponse
// @router /healthz [get]
func healthz(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.HealthResponse{Ok: true})
}

func root(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).SendString(rootMessage)
}

// @Summary Тестовый метод
// @Tags Сервис
// @Success 200 {object} apimodels.HelloResponse
// @router /api/hello [get]
func hello(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.HelloResponse{Message: helloMessage})
}
