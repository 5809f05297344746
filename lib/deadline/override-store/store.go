package overridestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.DeadlineOverride) error
	Get(cycleID, employeeID string, phase models.OverridePhase) (rec *dbmodels.DeadlineOverride, err error)
	ListByCycle(cycleID string) (list []dbmodels.DeadlineOverride, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Upsert(rec dbmodels.DeadlineOverride) error {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cycle_id"}, {Name: "employee_id"}, {Name: "phase"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"new_deadline", "reason", "created_by", "updated_at",
			}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Get(cycleID, employeeID string, phase models.OverridePhase) (*dbmodels.DeadlineOverride, error) {
	rec := dbmodels.DeadlineOverride{}
	err := i.db.
		Where("cycle_id = ?", cycleID).
		Where("employee_id = ?", employeeID).
		Where("phase = ?", phase).
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

func (i impl) ListByCycle(cycleID string) (list []dbmodels.DeadlineOverride, err error) {
	list = []dbmodels.DeadlineOverride{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
