package initializers

import (
	log "github.com/sirupsen/logrus"
	"scheduler-backend/config"
	"scheduler-backend/db"
	tablestore "scheduler-backend/lib/table/store"
)

// InitDBConnection без настроек подключения сервис стартует, но все запросы к таблицам вернут ошибку
func InitDBConnection() tablestore.Provider {
	if !config.Conf.DatabaseConfigured() {
		log.Warn("подключение к БД не настроено, укажите DATABASE_URL или DB_HOST")
		return tablestore.NewUnconfigured()
	}
	conn, err := db.Connect(config.Conf.Database.Driver, config.Conf.DatabaseDSN(),
		config.IsEnabled(config.Conf.Database.DebugMode), config.IsEnabled(config.Conf.Database.MigrateOnStart))
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(conn); err != nil {
		log.WithError(err).Error("БД недоступна при старте сервиса")
	}
	return tablestore.NewInstance(conn)
}
