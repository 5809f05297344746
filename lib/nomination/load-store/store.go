package loadstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	GetForUpdate(cycleID, reviewerID string) (rec *dbmodels.ReviewerLoad, err error)
	Increment(cycleID, reviewerID string) error
	Decrement(cycleID, reviewerID string) error
	Get(cycleID, reviewerID string) (rec *dbmodels.ReviewerLoad, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// GetForUpdate - счетчик нагрузки ревьюера под блокировкой строки.
// Строка создается при первом обращении, дальше удерживается FOR UPDATE
// до конца транзакции, чтобы конкурентные номинации не обошли лимит.
func (i impl) GetForUpdate(cycleID, reviewerID string) (*dbmodels.ReviewerLoad, error) {
	rec := dbmodels.ReviewerLoad{
		CycleID:     cycleID,
		ReviewerID:  reviewerID,
		Count:       0,
		LastUpdated: time.Now(),
	}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cycle_id = ? AND reviewer_id = ?", cycleID, reviewerID).
		FirstOrCreate(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) Increment(cycleID, reviewerID string) error {
	err := i.db.
		Model(&dbmodels.ReviewerLoad{}).
		Where("cycle_id = ? AND reviewer_id = ?", cycleID, reviewerID).
		Updates(map[string]interface{}{
			"count":        gorm.Expr("count + 1"),
			"last_updated": time.Now(),
		}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Decrement(cycleID, reviewerID string) error {
	err := i.db.
		Model(&dbmodels.ReviewerLoad{}).
		Where("cycle_id = ? AND reviewer_id = ?", cycleID, reviewerID).
		Where("count > 0").
		Updates(map[string]interface{}{
			"count":        gorm.Expr("count - 1"),
			"last_updated": time.Now(),
		}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Get(cycleID, reviewerID string) (*dbmodels.ReviewerLoad, error) {
	rec := dbmodels.ReviewerLoad{}
	err := i.db.
		Where("cycle_id = ? AND reviewer_id = ?", cycleID, reviewerID).
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
