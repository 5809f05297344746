package feedback

import (
	"github.com/pkg/errors"

	"feedback360-backend/db"
	cyclestore "feedback360-backend/lib/cycle/store"
	employeestore "feedback360-backend/lib/employee/store"
	feedbackstore "feedback360-backend/lib/feedback/store"
	nominationstore "feedback360-backend/lib/nomination/store"
	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type Provider interface {
	Progress(userID string) (view *feedbackapimodels.ProgressView, err error)
	FeedbackReceived(userID string) (list []feedbackapimodels.ReceivedFeedbackView, err error)
	FeedbackSummary(userID string) (view *feedbackapimodels.FeedbackSummaryView, err error)
	ReporteeFeedback(managerID, reporteeID string) (list []feedbackapimodels.ReceivedFeedbackView, hMsg string, err error)
	Audit(subjectID string) (list []feedbackapimodels.AuditFeedbackView, err error)
	Dashboard() (view *feedbackapimodels.DashboardView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		cycleStore:    cyclestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		nomStore:      nominationstore.NewInstance(db.DB),
		store:         feedbackstore.NewInstance(db.DB),
	}
}

type impl struct {
	cycleStore    cyclestore.Provider
	employeeStore employeestore.Provider
	nomStore      nominationstore.Provider
	store         feedbackstore.Provider
}

// Progress - агрегатные счетчики по активному циклу.
// Идентичность ревьюеров в ответ не попадает ни в каком виде.
func (i impl) Progress(userID string) (view *feedbackapimodels.ProgressView, err error) {
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	view = &feedbackapimodels.ProgressView{}
	if cycleRec == nil {
		return view, nil
	}
	recs, err := i.nomStore.ListByRequester(cycleRec.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения номинаций")
	}
	for _, rec := range recs {
		if !rec.CountsTowardCapacity() {
			continue
		}
		view.TotalRequested++
		switch {
		case rec.AcceptanceState == models.AcceptanceStateCompleted:
			view.Completed++
		case rec.ApprovalState == models.ApprovalStatePending:
			view.PendingApproval++
		default:
			view.PendingReview++
		}
	}
	return view, nil
}

// FeedbackReceived - полученная обратная связь, сгруппированная по номинациям.
// Анонимизация выполняется на уровне SQL-проекции: колонки ревьюера
// в выборку не входят, прятать на уровне представления нечего.
func (i impl) FeedbackReceived(userID string) (list []feedbackapimodels.ReceivedFeedbackView, err error) {
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return []feedbackapimodels.ReceivedFeedbackView{}, nil
	}
	rows, err := i.store.ListAnonymous(cycleRec.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения обратной связи")
	}
	return groupAnonymous(rows), nil
}

// FeedbackSummary - средние оценки по вопросам для активного цикла.
// Только агрегаты: средняя по вопросу и число ответов, без разреза по авторам.
func (i impl) FeedbackSummary(userID string) (view *feedbackapimodels.FeedbackSummaryView, err error) {
	view = &feedbackapimodels.FeedbackSummaryView{
		Ratings: []feedbackapimodels.RatingSummaryView{},
	}
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return view, nil
	}
	view.CompletedReviews, err = i.store.CountCompletedForSubject(cycleRec.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета завершенных ревью")
	}
	aggregates, err := i.store.AggregateRatings(cycleRec.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка расчета средних оценок")
	}
	for _, agg := range aggregates {
		view.Ratings = append(view.Ratings, feedbackapimodels.RatingSummaryView{
			QuestionText: agg.QuestionText,
			AvgRating:    agg.AvgRating,
			Responses:    agg.Responses,
		})
	}
	return view, nil
}

// ReporteeFeedback - обратная связь подчиненного для его руководителя.
// Проекция та же анонимизированная, руководитель видит содержание,
// но никогда не видит авторов.
func (i impl) ReporteeFeedback(managerID, reporteeID string) (list []feedbackapimodels.ReceivedFeedbackView, hMsg string, err error) {
	reportee, err := i.employeeStore.GetByID(reporteeID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if reportee == nil {
		return nil, "сотрудник не найден", nil
	}
	if reportee.ManagerID == nil || *reportee.ManagerID != managerID {
		return nil, "сотрудник не является вашим подчиненным", nil
	}
	list, err = i.FeedbackReceived(reporteeID)
	if err != nil {
		return nil, "", err
	}
	return list, "", nil
}

// Audit - выдача с идентичностью ревьюеров для HR-аудита.
// Отдельный код-путь с отдельной авторизацией, не параметр
// анонимизированной выборки.
func (i impl) Audit(subjectID string) (list []feedbackapimodels.AuditFeedbackView, err error) {
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return []feedbackapimodels.AuditFeedbackView{}, nil
	}
	rows, err := i.store.ListForAudit(cycleRec.ID, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения данных аудита")
	}
	list = []feedbackapimodels.AuditFeedbackView{}
	byNomination := map[string]int{}
	for _, row := range rows {
		idx, ok := byNomination[row.NominationID]
		if !ok {
			list = append(list, feedbackapimodels.AuditFeedbackView{
				NominationID:  row.NominationID,
				RequesterName: row.RequesterName,
				ReviewerName:  row.ReviewerName,
				Relationship:  row.Relationship.ToHuman(),
				CompletedAt:   row.CompletedAt,
				Responses:     []feedbackapimodels.ResponseView{},
			})
			idx = len(list) - 1
			byNomination[row.NominationID] = idx
		}
		list[idx].Responses = append(list[idx].Responses, feedbackapimodels.ResponseView{
			QuestionText: row.QuestionText,
			TextValue:    row.TextValue,
			RatingValue:  row.RatingValue,
		})
	}
	return list, nil
}

func (i impl) Dashboard() (view *feedbackapimodels.DashboardView, err error) {
	view = &feedbackapimodels.DashboardView{}
	view.ActiveEmployees, err = i.employeeStore.CountActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета сотрудников")
	}
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return view, nil
	}
	view.PendingApprovals, err = i.nomStore.CountByStates(cycleRec.ID, models.ApprovalStatePending, "")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета номинаций на согласовании")
	}
	inProgress, err := i.nomStore.CountByStates(cycleRec.ID, models.ApprovalStateApproved, models.AcceptanceStateInProgress)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета открытых ревью")
	}
	accepted, err := i.nomStore.CountByStates(cycleRec.ID, models.ApprovalStateApproved, models.AcceptanceStateAccepted)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета открытых ревью")
	}
	awaiting, err := i.nomStore.CountByStates(cycleRec.ID, models.ApprovalStateApproved, models.AcceptanceStatePending)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета открытых ревью")
	}
	view.OpenReviews = inProgress + accepted + awaiting
	view.CompletedInCycle, err = i.nomStore.CountByStates(cycleRec.ID, "", models.AcceptanceStateCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета завершенных ревью")
	}
	return view, nil
}

func groupAnonymous(rows []feedbackstore.AnonymousRow) (list []feedbackapimodels.ReceivedFeedbackView) {
	list = []feedbackapimodels.ReceivedFeedbackView{}
	byNomination := map[string]int{}
	for _, row := range rows {
		idx, ok := byNomination[row.NominationID]
		if !ok {
			list = append(list, feedbackapimodels.ReceivedFeedbackView{
				Relationship: row.Relationship.ToHuman(),
				CompletedAt:  row.CompletedAt,
				Responses:    []feedbackapimodels.ResponseView{},
			})
			idx = len(list) - 1
			byNomination[row.NominationID] = idx
		}
		list[idx].Responses = append(list[idx].Responses, feedbackapimodels.ResponseView{
			QuestionText: row.QuestionText,
			QuestionKind: string(row.QuestionKind),
			TextValue:    row.TextValue,
			RatingValue:  row.RatingValue,
		})
	}
	return list
}
