package responsestore

import (
	"gorm.io/gorm"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.FeedbackResponse) error
	ListByNomination(nominationID string) (list []dbmodels.FeedbackResponse, err error)
	CountByNomination(nominationID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// CreateBatch - итоговые ответы пишутся одним пакетом и не изменяются
func (i impl) CreateBatch(recs []dbmodels.FeedbackResponse) error {
	if len(recs) == 0 {
		return nil
	}
	err := i.db.
		Create(&recs).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByNomination(nominationID string) (list []dbmodels.FeedbackResponse, err error) {
	list = []dbmodels.FeedbackResponse{}
	err = i.db.
		Where("nomination_id = ?", nominationID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByNomination(nominationID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.FeedbackResponse{}).
		Where("nomination_id = ?", nominationID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
