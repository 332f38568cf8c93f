package api

import (
	"github.com/gofiber/fiber/v2"
	"scheduler-backend/controllers"
	aihandler "scheduler-backend/lib/ai"
	aiapimodels "scheduler-backend/models/api/ai"
)

type aiApiController struct {
	controllers.BaseAPIController
	handler aihandler.Provider
}

func InitAIApiRouters(api fiber.Router, handler aihandler.Provider) {
	controller := aiApiController{handler: handler}
	api.Post("ai", controller.relay)
}

// @Summary Отправка промпта в ИИ
// @Tags ИИ
// @Description Промпт передается провайдеру без изменений
// @Param	body	body	aiapimodels.PromptRequest	true	"request body"
// @Success 200 {object} aiapimodels.PromptResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/ai [post]
func (c *aiApiController) relay(ctx *fiber.Ctx) error {
	var payload aiapimodels.PromptRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), aiapimodels.ErrEmptyPrompt)
	}
	resp, err := c.handler.Relay(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
