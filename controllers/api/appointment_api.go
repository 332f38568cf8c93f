package api

import (
	"github.com/gofiber/fiber/v2"
	"scheduler-backend/controllers"
	appointmenthandler "scheduler-backend/lib/appointment"
	appointmentapimodels "scheduler-backend/models/api/appointment"
)

type appointmentApiController struct {
	controllers.BaseAPIController
	handler appointmenthandler.Provider
}

func InitAppointmentApiRouters(api fiber.Router, handler appointmenthandler.Provider) {
	controller := appointmentApiController{handler: handler}
	api.Route("appointments", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
	})
}

// @Summary Список записей клиентов
// @Tags Записи
// @Description Отсортирован по start_time
// @Success 200 {array} apimodels.Record
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/appointments [get]
func (c *appointmentApiController) list(ctx *fiber.Ctx) error {
	list, err := c.handler.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Создание записи клиента
// @Tags Записи
// @Param	body	body	appointmentapimodels.AppointmentData	true	"request body"
// @Success 201 {object} apimodels.Record
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/appointments [post]
func (c *appointmentApiController) create(ctx *fiber.Ctx) error {
	// нераспознанное тело равносильно пустому, поля проверит обработчик
	var payload appointmentapimodels.AppointmentData
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			payload = appointmentapimodels.AppointmentData{}
		}
	}
	created, err := c.handler.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(created)
}
