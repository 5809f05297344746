package cycle

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/db"
	cyclestore "feedback360-backend/lib/cycle/store"
	"feedback360-backend/lib/deadline"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(actorID string, data feedbackapimodels.CycleData) (id string, hMsg string, err error)
	Activate(id string) (hMsg string, err error)
	GetActive() (view *feedbackapimodels.CycleView, err error)
	List() (list []feedbackapimodels.CycleView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:    db.DB,
		store: cyclestore.NewInstance(db.DB),
	}
}

type impl struct {
	db    *gorm.DB
	store cyclestore.Provider
}

func (i impl) Create(actorID string, data feedbackapimodels.CycleData) (id string, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	id, err = i.store.Create(dbmodels.ReviewCycle{
		Name:               data.Name,
		NominationStart:    data.NominationStart,
		NominationDeadline: data.NominationDeadline,
		FeedbackDeadline:   data.FeedbackDeadline,
		IsActive:           false,
		CreatedBy:          actorID,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания цикла")
	}
	return id, "", nil
}

// Activate - активным может быть только один цикл.
// Активация нового цикла и деактивация остальных выполняются одной транзакцией.
func (i impl) Activate(id string) (hMsg string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := cyclestore.NewInstance(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения цикла")
		}
		if rec == nil {
			hMsg = "цикл не найден"
			return nil
		}
		err = store.DeactivateAll()
		if err != nil {
			return errors.Wrap(err, "ошибка деактивации циклов")
		}
		err = store.SetActive(id)
		if err != nil {
			return errors.Wrap(err, "ошибка активации цикла")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

func (i impl) GetActive() (view *feedbackapimodels.CycleView, err error) {
	rec, err := i.store.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if rec == nil {
		return nil, nil
	}
	converted := feedbackapimodels.CycleConvert(*rec)
	// общецикловая фаза, без персональных продлений
	converted.Phase = string(deadline.ComputePhase(time.Now(), rec.NominationDeadline, rec.FeedbackDeadline, nil, nil))
	return &converted, nil
}

func (i impl) List() (list []feedbackapimodels.CycleView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка циклов")
	}
	list = make([]feedbackapimodels.CycleView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.CycleConvert(rec))
	}
	return list, nil
}
