package cyclestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ReviewCycle) (id string, err error)
	GetByID(id string) (rec *dbmodels.ReviewCycle, err error)
	GetActive() (rec *dbmodels.ReviewCycle, err error)
	List() (list []dbmodels.ReviewCycle, err error)
	DeactivateAll() error
	SetActive(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ReviewCycle) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ReviewCycle, error) {
	rec := dbmodels.ReviewCycle{}
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

func (i impl) GetActive() (*dbmodels.ReviewCycle, error) {
	rec := dbmodels.ReviewCycle{}
	err := i.db.
		Where("is_active = true").
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

func (i impl) List() (list []dbmodels.ReviewCycle, err error) {
	list = []dbmodels.ReviewCycle{}
	err = i.db.
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeactivateAll() error {
	err := i.db.
		Model(&dbmodels.ReviewCycle{}).
		Where("is_active = true").
		Update("is_active", false).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) SetActive(id string) error {
	err := i.db.
		Model(&dbmodels.ReviewCycle{}).
		Where("id = ?", id).
		Update("is_active", true).
		Error
	if err != nil {
		return err
	}
	return nil
}
