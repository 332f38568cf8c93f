package initializers

import (
	log "github.com/sirupsen/logrus"
	"scheduler-backend/config"
	"scheduler-backend/controllers/api"
	"scheduler-backend/fiberlog"
	aihandler "scheduler-backend/lib/ai"
	appointmenthandler "scheduler-backend/lib/appointment"
	tablehandler "scheduler-backend/lib/table"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() (api.Handlers, api.Features) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)

	features := api.Features{
		AIRelay:            config.IsEnabled(config.Conf.Features.AIRelay),
		LegacyAppointments: config.IsEnabled(config.Conf.Features.LegacyAppointments),
		Hello:              config.IsEnabled(config.Conf.Features.Hello),
	}

	store := InitDBConnection()
	registry := tablehandler.NewRegistry(config.Conf.AllowedResources()...)
	log.WithField("resources", registry.Names()).Info("доступные таблицы")

	handlers := api.Handlers{
		Table:       tablehandler.NewHandler(store, registry),
		Appointment: appointmenthandler.NewHandler(store),
	}
	if features.AIRelay {
		aiProvider, err := aihandler.NewProvider(*config.Conf)
		if err != nil {
			panic(err.Error())
		}
		handlers.AI = aiProvider
		log.WithField("provider", config.Conf.AI.Provider).Info("ретрансляция запросов в AI включена")
	}
	return handlers, features
}
