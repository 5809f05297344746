package filestorage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ExportFile) (id string, err error)
	GetByID(id string) (rec *dbmodels.ExportFile, err error)
	ListByEmployee(employeeID string) (list []dbmodels.ExportFile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExportFile) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ExportFile, error) {
	rec := dbmodels.ExportFile{}
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

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.ExportFile, err error) {
	list = []dbmodels.ExportFile{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
