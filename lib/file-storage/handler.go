package filestorage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"feedback360-backend/db"
	filestoragestore "feedback360-backend/lib/file-storage/store"
	filestoragestorage "feedback360-backend/lib/file-storage/storage"
	dbmodels "feedback360-backend/models/db"
)

var contentTypes = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pdf":  "application/pdf",
}

type Provider interface {
	SaveExport(ctx context.Context, employeeID, cycleID, fileName, fileType string, data []byte) (id string, err error)
	GetExport(ctx context.Context, id string) (rec *dbmodels.ExportFile, data []byte, err error)
	ListExports(employeeID string) (list []dbmodels.ExportFile, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: filestoragestore.NewInstance(db.DB),
	}
}

type impl struct {
	store filestoragestore.Provider
}

// SaveExport - файл уходит в s3, учетная запись о нем в базу
func (i impl) SaveExport(ctx context.Context, employeeID, cycleID, fileName, fileType string, data []byte) (id string, err error) {
	contentType, ok := contentTypes[fileType]
	if !ok {
		return "", errors.Errorf("неподдерживаемый тип выгрузки: %v", fileType)
	}
	key := fmt.Sprintf("exports/%s/%s.%s", employeeID, uuid.NewString(), fileType)
	err = filestoragestorage.Instance.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.ExportFile{
		EmployeeID: employeeID,
		CycleID:    cycleID,
		FileName:   fileName,
		FileType:   fileType,
		BucketKey:  key,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения записи о выгрузке")
	}
	return id, nil
}

func (i impl) GetExport(ctx context.Context, id string) (rec *dbmodels.ExportFile, data []byte, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения записи о выгрузке")
	}
	if rec == nil {
		return nil, nil, nil
	}
	data, err = filestoragestorage.Instance.GetFile(ctx, rec.BucketKey)
	if err != nil {
		return nil, nil, err
	}
	return rec, data, nil
}

func (i impl) ListExports(employeeID string) (list []dbmodels.ExportFile, err error) {
	list, err = i.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка выгрузок")
	}
	return list, nil
}
