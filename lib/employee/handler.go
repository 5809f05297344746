package employee

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/db"
	employeestore "feedback360-backend/lib/employee/store"
	"feedback360-backend/models"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(data feedbackapimodels.EmployeeData) (id string, hMsg string, err error)
	Update(id string, data feedbackapimodels.EmployeeData) (hMsg string, err error)
	Get(id string) (view *feedbackapimodels.EmployeeView, err error)
	List(pagination apimodels.Pagination) (list []feedbackapimodels.EmployeeView, rowCount int64, err error)
	ListReportees(managerID string) (list []feedbackapimodels.EmployeeView, err error)
	Deactivate(id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:    db.DB,
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	db    *gorm.DB
	store employeestore.Provider
}

// DesignationRankOf - уровень должности по ее названию.
// Названия в кадровой выгрузке не нормированы ("Sr. Manager", "Engineering Manager"),
// поэтому ищем по вхождению, от старшего уровня к младшему.
func DesignationRankOf(designation string) int {
	lowered := strings.ToLower(designation)
	switch {
	case strings.Contains(lowered, "founder"):
		return models.RankFounder
	case strings.Contains(lowered, "associate director"):
		return models.RankAssociateDirector
	case strings.Contains(lowered, "director"):
		return models.RankDirector
	case strings.Contains(lowered, "manager"):
		return models.RankManager
	case strings.Contains(lowered, "lead"):
		return models.RankLead
	}
	return models.RankEmployee
}

func (i impl) Create(data feedbackapimodels.EmployeeData) (id string, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка проверки почты")
	}
	if existing != nil {
		return "", "сотрудник с такой почтой уже существует", nil
	}
	rec := dbmodels.Employee{
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Team:            data.Team,
		Designation:     data.Designation,
		DesignationRank: DesignationRankOf(data.Designation),
		JoinDate:        data.JoinDate,
		IsExternal:      data.IsExternal,
		IsActive:        true,
		Role:            models.EmployeeRole,
	}
	if data.ManagerEmail != "" {
		manager, err := i.store.GetByEmail(data.ManagerEmail)
		if err != nil {
			return "", "", errors.Wrap(err, "ошибка поиска руководителя")
		}
		if manager == nil {
			return "", "руководитель с указанной почтой не найден", nil
		}
		rec.ManagerID = &manager.ID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания сотрудника")
	}
	return id, "", nil
}

func (i impl) Update(id string, data feedbackapimodels.EmployeeData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "сотрудник не найден", nil
	}
	updMap := map[string]interface{}{
		"first_name":       data.FirstName,
		"last_name":        data.LastName,
		"team":             data.Team,
		"designation":      data.Designation,
		"designation_rank": DesignationRankOf(data.Designation),
		"join_date":        data.JoinDate,
		"is_external":      data.IsExternal,
	}
	if data.ManagerEmail != "" {
		manager, err := i.store.GetByEmail(data.ManagerEmail)
		if err != nil {
			return "", errors.Wrap(err, "ошибка поиска руководителя")
		}
		if manager == nil {
			return "руководитель с указанной почтой не найден", nil
		}
		if manager.ID == id {
			return "сотрудник не может быть руководителем самого себя", nil
		}
		updMap["manager_id"] = manager.ID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления сотрудника")
	}
	return "", nil
}

func (i impl) Get(id string) (view *feedbackapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return nil, nil
	}
	converted := feedbackapimodels.EmployeeConvert(*rec)
	return &converted, nil
}

func (i impl) List(pagination apimodels.Pagination) (list []feedbackapimodels.EmployeeView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recs, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	list = make([]feedbackapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.EmployeeConvert(rec))
	}
	return list, rowCount, nil
}

// ListReportees - прямые подчиненные руководителя
func (i impl) ListReportees(managerID string) (list []feedbackapimodels.EmployeeView, err error) {
	recs, err := i.store.ListReportees(managerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка подчиненных")
	}
	list = make([]feedbackapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.EmployeeConvert(rec))
	}
	return list, nil
}

func (i impl) Deactivate(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "сотрудник не найден", nil
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return "", errors.Wrap(err, "ошибка деактивации сотрудника")
	}
	return "", nil
}
