package draftstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.DraftResponse) error
	ListByNomination(nominationID string) (list []dbmodels.DraftResponse, err error)
	Get(nominationID, questionID string) (rec *dbmodels.DraftResponse, err error)
	DeleteByNomination(nominationID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert - одна строка черновика на пару номинация+вопрос
func (i impl) Upsert(rec dbmodels.DraftResponse) error {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "nomination_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rating_value", "text_value", "saved_at", "updated_at",
			}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByNomination(nominationID string) (list []dbmodels.DraftResponse, err error) {
	list = []dbmodels.DraftResponse{}
	err = i.db.
		Where("nomination_id = ?", nominationID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Get(nominationID, questionID string) (*dbmodels.DraftResponse, error) {
	rec := dbmodels.DraftResponse{}
	err := i.db.
		Where("nomination_id = ?", nominationID).
		Where("question_id = ?", questionID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) DeleteByNomination(nominationID string) error {
	err := i.db.
		Where("nomination_id = ?", nominationID).
		Delete(&dbmodels.DraftResponse{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
