package question

import (
	"github.com/pkg/errors"

	"feedback360-backend/db"
	questionstore "feedback360-backend/lib/question/store"
	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(data feedbackapimodels.QuestionData) (id string, hMsg string, err error)
	Update(id string, data feedbackapimodels.QuestionData) (hMsg string, err error)
	Deactivate(id string) (hMsg string, err error)
	List() (list []dbmodels.FeedbackQuestion, err error)
	ListByRelationship(relationship models.RelationshipType) (list []feedbackapimodels.QuestionView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: questionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store questionstore.Provider
}

func (i impl) Create(data feedbackapimodels.QuestionData) (id string, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	id, err = i.store.Create(dbmodels.FeedbackQuestion{
		Text:         data.Text,
		Kind:         models.QuestionKind(data.Kind),
		Relationship: models.RelationshipType(data.Relationship),
		SortOrder:    data.SortOrder,
		IsActive:     true,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания вопроса")
	}
	return id, "", nil
}

func (i impl) Update(id string, data feedbackapimodels.QuestionData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вопроса")
	}
	if rec == nil {
		return "вопрос не найден", nil
	}
	err = i.store.Update(id, map[string]interface{}{
		"text":         data.Text,
		"kind":         data.Kind,
		"relationship": data.Relationship,
		"sort_order":   data.SortOrder,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления вопроса")
	}
	return "", nil
}

func (i impl) Deactivate(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вопроса")
	}
	if rec == nil {
		return "вопрос не найден", nil
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return "", errors.Wrap(err, "ошибка деактивации вопроса")
	}
	return "", nil
}

func (i impl) List() (list []dbmodels.FeedbackQuestion, err error) {
	list, err = i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вопросов")
	}
	return list, nil
}

func (i impl) ListByRelationship(relationship models.RelationshipType) (list []feedbackapimodels.QuestionView, err error) {
	recs, err := i.store.ListActiveByRelationship(relationship)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вопросов категории")
	}
	list = make([]feedbackapimodels.QuestionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.QuestionConvert(rec))
	}
	return list, nil
}
