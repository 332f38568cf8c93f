package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"scheduler-backend/fiberlog"
	aihandler "scheduler-backend/lib/ai"
	tablehandler "scheduler-backend/lib/table"
	tablestore "scheduler-backend/lib/table/store"
	apimodels "scheduler-backend/models/api"
	aiapimodels "scheduler-backend/models/api/ai"
	appointmentapimodels "scheduler-backend/models/api/appointment"
)

var ErrInvalidRecord = errors.New("request body must be a JSON object")

type BaseAPIController struct{}

// BodyParser разбирает тело запроса как JSON независимо от Content-Type
func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.App().Config().JSONDecoder(ctx.Body(), out); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) ParseRecord(ctx *fiber.Ctx) (apimodels.Record, error) {
	var rec apimodels.Record
	if err := c.BodyParser(ctx, &rec); err != nil || rec == nil {
		return nil, ErrInvalidRecord
	}
	return rec, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("request_id", fiberlog.GetRequestID(ctx)).
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError определяет HTTP статус по ошибке, ошибки хранилища и провайдера логируются
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error) error {
	status, message := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).Error("ошибка обработки запроса")
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}

func ErrorStatus(err error) (status int, message string) {
	var notConfigured aihandler.NotConfiguredError
	switch {
	case errors.Is(err, tablehandler.ErrUnknownResource),
		errors.Is(err, tablehandler.ErrInvalidDate),
		errors.Is(err, aiapimodels.ErrEmptyPrompt),
		errors.Is(err, appointmentapimodels.ErrMissingFields),
		errors.Is(err, ErrInvalidRecord):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, tablestore.ErrEmptyRecord):
		return fiber.StatusBadRequest, "nothing to update"
	case errors.Is(err, tablestore.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, tablestore.ErrNotConfigured),
		errors.Is(err, aihandler.ErrGenerationFailed):
		return fiber.StatusInternalServerError, err.Error()
	case errors.As(err, &notConfigured):
		return fiber.StatusInternalServerError, notConfigured.Error()
	}
	// ошибка хранилища отдается как есть, без наших обёрток
	return fiber.StatusInternalServerError, errors.Cause(err).Error()
}
