package questionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FeedbackQuestion) (id string, err error)
	GetByID(id string) (rec *dbmodels.FeedbackQuestion, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.FeedbackQuestion, err error)
	ListActiveByRelationship(relationship models.RelationshipType) (list []dbmodels.FeedbackQuestion, err error)
	Count() (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FeedbackQuestion) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FeedbackQuestion, error) {
	rec := dbmodels.FeedbackQuestion{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.FeedbackQuestion{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.FeedbackQuestion, err error) {
	list = []dbmodels.FeedbackQuestion{}
	err = i.db.
		Order("relationship ASC, sort_order ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActiveByRelationship(relationship models.RelationshipType) (list []dbmodels.FeedbackQuestion, err error) {
	list = []dbmodels.FeedbackQuestion{}
	err = i.db.
		Where("relationship = ?", relationship).
		Where("is_active = true").
		Order("sort_order ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.FeedbackQuestion{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
