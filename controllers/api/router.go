package api

import (
	"github.com/gofiber/fiber/v2"
	aihandler "scheduler-backend/lib/ai"
	appointmenthandler "scheduler-backend/lib/appointment"
	tablehandler "scheduler-backend/lib/table"
	"scheduler-backend/middleware"
)

type Handlers struct {
	Table       tablehandler.Provider
	Appointment appointmenthandler.Provider
	AI          aihandler.Provider
}

type Features struct {
	AIRelay            bool
	LegacyAppointments bool
	Hello              bool
}

// InitRouters порядок важен: фиксированные маршруты регистрируются раньше /api/:resource
func InitRouters(app *fiber.App, handlers Handlers, features Features) {
	InitServiceRouters(app)

	api := app.Group("/api")
	if features.Hello {
		InitHelloRouters(api)
	}
	if features.AIRelay {
		InitAIApiRouters(api, handlers.AI)
	}
	if features.LegacyAppointments {
		InitAppointmentApiRouters(api, handlers.Appointment)
	}
	InitShiftsWeekRouters(api, handlers.Table)
	InitTableApiRouters(api, handlers.Table)

	app.Use(middleware.NotFound())
}
