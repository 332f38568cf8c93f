package api

import (
	"github.com/gofiber/fiber/v2"
	"scheduler-backend/controllers"
	tablehandler "scheduler-backend/lib/table"
)

type tableApiController struct {
	controllers.BaseAPIController
	handler tablehandler.Provider
}

// InitShiftsWeekRouters регистрируется до общих маршрутов, иначе /api/shifts/week/... не дойдет до обработчика
func InitShiftsWeekRouters(api fiber.Router, handler tablehandler.Provider) {
	controller := tableApiController{handler: handler}
	api.Get("shifts/week/:startDate", controller.shiftsWeek)
}

func InitTableApiRouters(api fiber.Router, handler tablehandler.Provider) {
	controller := tableApiController{handler: handler}
	api.Get(":resource", controller.list)
	api.Post(":resource", controller.create)
	api.Put(":resource/:id", controller.update)
	api.Delete(":resource/:id", controller.delete)
}

// @Summary Список записей таблицы
// @Tags Таблицы
// @Param   resource		path	string	true	"имя таблицы"
// @Success 200 {array} apimodels.Record
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/{resource} [get]
func (c *tableApiController) list(ctx *fiber.Ctx) error {
	resource := ctx.Params("resource")
	list, err := c.handler.List(ctx.UserContext(), resource)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("resource", resource), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Смены за неделю
// @Tags Таблицы
// @Param   startDate		path	string	true	"первый день недели, YYYY-MM-DD"
// @Success 200 {array} apimodels.Record
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/shifts/week/{startDate} [get]
func (c *tableApiController) shiftsWeek(ctx *fiber.Ctx) error {
	startDate := ctx.Params("startDate")
	list, err := c.handler.ListShiftsWeek(ctx.UserContext(), startDate)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("start_date", startDate), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Создание записи
// @Tags Таблицы
// @Param   resource		path	string	true	"имя таблицы"
// @Param	body			body	apimodels.Record	true	"запись"
// @Success 201 {object} apimodels.Record
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/{resource} [post]
func (c *tableApiController) create(ctx *fiber.Ctx) error {
	resource := ctx.Params("resource")
	logger := c.GetLogger(ctx).WithField("resource", resource)
	rec, err := c.ParseRecord(ctx)
	if err != nil {
		return c.SendError(ctx, logger, err)
	}
	created, err := c.handler.Create(ctx.UserContext(), resource, rec)
	if err != nil {
		return c.SendError(ctx, logger, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(created)
}

// @Summary Изменение записи
// @Tags Таблицы
// @Param   resource		path	string	true	"имя таблицы"
// @Param   id				path	string	true	"rec ID"
// @Param	body			body	apimodels.Record	true	"изменяемые поля"
// @Success 200 {object} apimodels.Record
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/{resource}/{id} [put]
func (c *tableApiController) update(ctx *fiber.Ctx) error {
	resource, id := ctx.Params("resource"), ctx.Params("id")
	logger := c.GetLogger(ctx).WithField("resource", resource).WithField("id", id)
	rec, err := c.ParseRecord(ctx)
	if err != nil {
		return c.SendError(ctx, logger, err)
	}
	updated, err := c.handler.Update(ctx.UserContext(), resource, id, rec)
	if err != nil {
		return c.SendError(ctx, logger, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(updated)
}

// @Summary Удаление записи
// @Tags Таблицы
// @Param   resource		path	string	true	"имя таблицы"
// @Param   id				path	string	true	"rec ID"
// @Success 204
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/{resource}/{id} [delete]
func (c *tableApiController) delete(ctx *fiber.Ctx) error {
	resource, id := ctx.Params("resource"), ctx.Params("id")
	err := c.handler.Delete(ctx.UserContext(), resource, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("resource", resource).WithField("id", id), err)
	}
	return ctx.Status(fiber.StatusNoContent).Send(nil)
}
