package notificationstore

import (
	"time"

	"gorm.io/gorm"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmailQueue) (id string, err error)
	ListPending(limit int) (list []dbmodels.EmailQueue, err error)
	MarkSent(id string) error
	MarkFailed(id string, attempt int, sendErr string) error
	CountRecentByKind(recipientEmail string, kind models.EmailKind, since time.Time) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmailQueue) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// ListPending - пачка неотправленных писем, не исчерпавших попытки
func (i impl) ListPending(limit int) (list []dbmodels.EmailQueue, err error) {
	list = []dbmodels.EmailQueue{}
	err = i.db.
		Where("status = ?", models.EmailStatusPending).
		Where("attempts < ?", models.EmailMaxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkSent(id string) error {
	now := time.Now()
	err := i.db.
		Model(&dbmodels.EmailQueue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  models.EmailStatusSent,
			"sent_at": &now,
		}).
		Error
	if err != nil {
		return err
	}
	return nil
}

// CountRecentByKind - защита от повторной постановки одинаковых напоминаний
func (i impl) CountRecentByKind(recipientEmail string, kind models.EmailKind, since time.Time) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.EmailQueue{}).
		Where("recipient_email = ?", recipientEmail).
		Where("kind = ?", kind).
		Where("created_at >= ?", since).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) MarkFailed(id string, attempt int, sendErr string) error {
	updMap := map[string]interface{}{
		"attempts":   attempt,
		"last_error": sendErr,
	}
	if attempt >= models.EmailMaxAttempts {
		updMap["status"] = models.EmailStatusFailed
	}
	err := i.db.
		Model(&dbmodels.EmailQueue{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
