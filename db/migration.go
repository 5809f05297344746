package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "feedback360-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.ReviewCycle{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ReviewCycle")
	}
	if err := DB.AutoMigrate(&dbmodels.Nomination{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Nomination")
	}
	if err := DB.AutoMigrate(&dbmodels.RejectionRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RejectionRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.ReviewerLoad{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ReviewerLoad")
	}
	if err := DB.AutoMigrate(&dbmodels.FeedbackQuestion{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FeedbackQuestion")
	}
	if err := DB.AutoMigrate(&dbmodels.DraftResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры DraftResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.FeedbackResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FeedbackResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.DeadlineOverride{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры DeadlineOverride")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailQueue{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmailQueue")
	}
	if err := DB.AutoMigrate(&dbmodels.ExternalToken{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExternalToken")
	}
	if err := DB.AutoMigrate(&dbmodels.ExportFile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExportFile")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
