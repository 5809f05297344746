package rejectionstore

import (
	"strings"

	"gorm.io/gorm"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RejectionRecord) (id string, err error)
	Exists(cycleID, requesterID, reviewerID string) (exists bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RejectionRecord) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		// пара уже заблокирована параллельным отклонением
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", nil
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Exists(cycleID, requesterID, reviewerID string) (exists bool, err error) {
	var count int64
	err = i.db.
		Model(&dbmodels.RejectionRecord{}).
		Where("cycle_id = ?", cycleID).
		Where("requester_id = ?", requesterID).
		Where("reviewer_id = ?", reviewerID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
