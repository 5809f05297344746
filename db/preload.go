package db

import (
	log "github.com/sirupsen/logrus"

	"feedback360-backend/config"
	employeestore "feedback360-backend/lib/employee/store"
	questionstore "feedback360-backend/lib/question/store"
	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

func InitPreload() {
	addHRAdmin()
	fillQuestions()
}

func addHRAdmin() {
	if config.Conf.HR.Email == "" {
		log.Warn("HR администратор не добавлен, отсутствует настройка HR_ADMIN_EMAIL")
		return
	}
	store := employeestore.NewInstance(DB)
	existedRec, err := store.GetByEmail(config.Conf.HR.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления HR администратора")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.Employee{
		Email:     config.Conf.HR.Email,
		FirstName: config.Conf.HR.FirstName,
		LastName:  config.Conf.HR.LastName,
		IsActive:  true,
		Role:      models.HRAdminRole,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления HR администратора")
	}
}

type questionSeed struct {
	text string
	kind models.QuestionKind
}

// стартовые наборы вопросов по категориям отношений
var questionSeeds = map[models.RelationshipType][]questionSeed{
	models.RelationshipPeer: {
		{"Оцените качество совместной работы с коллегой", models.QuestionKindRating},
		{"Оцените коммуникацию внутри команды", models.QuestionKindRating},
		{"Что коллеге стоит продолжать делать?", models.QuestionKindText},
		{"Что коллеге стоит улучшить?", models.QuestionKindText},
	},
	models.RelationshipInternal: {
		{"Оцените качество взаимодействия между командами", models.QuestionKindRating},
		{"Оцените соблюдение договоренностей", models.QuestionKindRating},
		{"Опишите сильные стороны сотрудника во взаимодействии", models.QuestionKindText},
	},
	models.RelationshipReportee: {
		{"Оцените качество постановки задач руководителем", models.QuestionKindRating},
		{"Оцените регулярность и пользу обратной связи от руководителя", models.QuestionKindRating},
		{"Что руководителю стоит изменить в работе с командой?", models.QuestionKindText},
	},
	models.RelationshipExternal: {
		{"Оцените качество сотрудничества", models.QuestionKindRating},
		{"Поделитесь впечатлением от совместной работы", models.QuestionKindText},
	},
}

func fillQuestions() {
	store := questionstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка заполнения вопросов")
		return
	}
	if count > 0 {
		return
	}
	for relationship, seeds := range questionSeeds {
		for idx, seed := range seeds {
			rec := dbmodels.FeedbackQuestion{
				Text:         seed.text,
				Kind:         seed.kind,
				Relationship: relationship,
				SortOrder:    idx + 1,
				IsActive:     true,
			}
			if _, err = store.Create(rec); err != nil {
				log.WithError(err).Error("ошибка заполнения вопросов")
				return
			}
		}
	}
	log.Info("стартовые наборы вопросов добавлены")
}
