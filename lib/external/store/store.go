package externalstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ExternalToken) (id string, err error)
	GetByTokenID(tokenID string) (rec *dbmodels.ExternalToken, err error)
	MarkFirstUsed(id string) error
	RevokeByNomination(nominationID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExternalToken) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByTokenID(tokenID string) (*dbmodels.ExternalToken, error) {
	rec := dbmodels.ExternalToken{}
	err := i.db.
		Where("token_id = ?", tokenID).
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

func (i impl) MarkFirstUsed(id string) error {
	now := time.Now()
	err := i.db.
		Model(&dbmodels.ExternalToken{}).
		Where("id = ?", id).
		Where("first_used_at IS NULL").
		Update("first_used_at", &now).
		Error
	if err != nil {
		return err
	}
	return nil
}

// RevokeByNomination - отзыв всех токенов номинации, например при отклонении
func (i impl) RevokeByNomination(nominationID string) error {
	now := time.Now()
	err := i.db.
		Model(&dbmodels.ExternalToken{}).
		Where("nomination_id = ?", nominationID).
		Where("revoked_at IS NULL").
		Update("revoked_at", &now).
		Error
	if err != nil {
		return err
	}
	return nil
}
