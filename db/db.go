package db

import (
	"github.com/glebarez/sqlite"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

func Connect(driver, dsn string, debugMode bool, migrate bool) (*gorm.DB, error) {
	dialector, err := getDialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	if migrate {
		if err = AutoMigrateDB(db); err != nil {
			return nil, err
		}
	}
	log.WithField("driver", driver).Info("Сервис успешно подключен к БД")
	return db, nil
}

func getDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverSqlite:
		return sqlite.Open(dsn), nil
	}
	return nil, errors.Errorf("неизвестный драйвер БД: %s", driver)
}

func PingDB(DB *gorm.DB) error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
