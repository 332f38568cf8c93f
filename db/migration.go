package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "scheduler-backend/models/db"
)

// AutoMigrateDB создает таблицы по умолчанию (employees, shifts, appointments).
// Для Supabase схема ведется на стороне хранилища, поэтому по умолчанию выключено
func AutoMigrateDB(DB *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Shift{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Shift")
	}
	if err := DB.AutoMigrate(&dbmodels.Appointment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Appointment")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
