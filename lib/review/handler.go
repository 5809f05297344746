package review

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/db"
	loadstore "feedback360-backend/lib/nomination/load-store"
	nominationstore "feedback360-backend/lib/nomination/store"
	"feedback360-backend/lib/notification"
	questionstore "feedback360-backend/lib/question/store"
	draftstore "feedback360-backend/lib/review/draft-store"
	responsestore "feedback360-backend/lib/review/response-store"
	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

// TokenActor - актор операций, авторизованных токеном внешнего ревьюера.
// Проверка токена выполняется до вызова, личность ревьюера не перепроверяется.
const TokenActor = "token"

type Provider interface {
	Accept(nominationID, actorID string) (hMsg string, err error)
	Decline(nominationID, actorID string, data feedbackapimodels.DeclineData) (hMsg string, err error)
	BeginExternal(nominationID string) (hMsg string, err error)
	ListAssignments(reviewerID, cycleID string) (list []feedbackapimodels.PendingReviewView, err error)
	GetForm(nominationID, actorID string) (questions []feedbackapimodels.QuestionView, drafts []feedbackapimodels.DraftView, hMsg string, err error)
	SaveDraft(nominationID, actorID string, data feedbackapimodels.DraftData) (hMsg string, err error)
	SubmitFinal(nominationID, actorID string, data feedbackapimodels.FinalSubmitData) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:              db.DB,
		nominationStore: nominationstore.NewInstance(db.DB),
		questionStore:   questionstore.NewInstance(db.DB),
		draftStore:      draftstore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx - операции ревью в рамках внешней транзакции
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:              tx,
		nominationStore: nominationstore.NewInstance(tx),
		questionStore:   questionstore.NewInstance(tx),
		draftStore:      draftstore.NewInstance(tx),
	}
}

type impl struct {
	db              *gorm.DB
	nominationStore nominationstore.Provider
	questionStore   questionstore.Provider
	draftStore      draftstore.Provider
}

// Accept - решение ревьюера по согласованной номинации.
// Автопринятие по дедлайну проходит той же точкой входа с актором models.AutoActor.
func (i impl) Accept(nominationID, actorID string) (hMsg string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		nominationStore := nominationstore.NewInstance(tx)
		rec, err := nominationStore.GetByID(nominationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения номинации")
		}
		if rec == nil {
			hMsg = "номинация не найдена"
			return nil
		}
		if rec.ApprovalState != models.ApprovalStateApproved || !rec.AcceptanceState.AllowDecision() {
			hMsg = "решение по номинации уже принято"
			return nil
		}
		if actorID != models.AutoActor && actorID != rec.ReviewerID {
			hMsg = "решение доступно только выдвинутому ревьюеру"
			return nil
		}
		now := time.Now()
		err = nominationStore.Update(nominationID, map[string]interface{}{
			"acceptance_state": models.AcceptanceStateAccepted,
			"accepted_at":      &now,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения решения ревьюера")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

// Decline - отказ ревьюера с обязательной причиной.
// Счетчик нагрузки освобождается, запросившему уходит уведомление об
// освободившемся слоте без имени отказавшегося.
func (i impl) Decline(nominationID, actorID string, data feedbackapimodels.DeclineData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		nominationStore := nominationstore.NewInstance(tx)
		rec, err := nominationStore.GetByID(nominationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения номинации")
		}
		if rec == nil {
			hMsg = "номинация не найдена"
			return nil
		}
		if rec.ApprovalState != models.ApprovalStateApproved || !rec.AcceptanceState.AllowDecision() {
			hMsg = "решение по номинации уже принято"
			return nil
		}
		if actorID != rec.ReviewerID {
			hMsg = "решение доступно только выдвинутому ревьюеру"
			return nil
		}
		err = nominationStore.Update(nominationID, map[string]interface{}{
			"acceptance_state": models.AcceptanceStateDeclined,
			"decline_reason":   data.Reason,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения отказа")
		}
		err = loadstore.NewInstance(tx).Decrement(rec.CycleID, rec.ReviewerID)
		if err != nil {
			return errors.Wrap(err, "ошибка освобождения счетчика нагрузки")
		}
		if rec.Requester != nil {
			err = notification.NewHandlerWithTx(tx).EnqueueSlotReleased(rec.Requester.Email, models.SlotReleasedTemplateData{
				RequesterName: rec.Requester.GetFullName(),
			})
			if err != nil {
				return errors.Wrap(err, "ошибка постановки уведомления в очередь")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

// BeginExternal - неявное согласие внешнего ревьюера.
// Этап явного принятия пропускается, номинация переходит сразу в работу.
// Повторный вход по уже используемому токену штатно пропускается.
func (i impl) BeginExternal(nominationID string) (hMsg string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		nominationStore := nominationstore.NewInstance(tx)
		rec, err := nominationStore.GetByID(nominationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения номинации")
		}
		if rec == nil {
			hMsg = "номинация не найдена"
			return nil
		}
		if rec.ApprovalState != models.ApprovalStateApproved {
			hMsg = "номинация не согласована"
			return nil
		}
		if !rec.AcceptanceState.AllowDecision() {
			return nil
		}
		now := time.Now()
		err = nominationStore.Update(nominationID, map[string]interface{}{
			"acceptance_state": models.AcceptanceStateInProgress,
			"accepted_at":      &now,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка перевода номинации в работу")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

func (i impl) ListAssignments(reviewerID, cycleID string) (list []feedbackapimodels.PendingReviewView, err error) {
	recs, err := i.nominationStore.ListOpenForReviewer(cycleID, reviewerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения назначений ревьюера")
	}
	list = make([]feedbackapimodels.PendingReviewView, 0, len(recs))
	for _, rec := range recs {
		drafts, err := i.draftStore.ListByNomination(rec.ID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения черновиков")
		}
		item := feedbackapimodels.PendingReviewView{
			NominationID: rec.ID,
			Relationship: rec.Relationship.ToHuman(),
			State:        rec.AcceptanceState.ToHuman(),
			DraftCount:   len(drafts),
			RequestedAt:  rec.CreatedAt,
		}
		if rec.Requester != nil {
			item.RequesterName = rec.Requester.GetFullName()
			item.RequesterTeam = rec.Requester.Team
		}
		list = append(list, item)
	}
	return list, nil
}

// GetForm - вопросы категории отношений номинации вместе с черновиками
func (i impl) GetForm(nominationID, actorID string) (questions []feedbackapimodels.QuestionView, drafts []feedbackapimodels.DraftView, hMsg string, err error) {
	rec, err := i.nominationStore.GetByID(nominationID)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "ошибка получения номинации")
	}
	if rec == nil {
		return nil, nil, "номинация не найдена", nil
	}
	if msg := checkReviewerAuthority(*rec, actorID); msg != "" {
		return nil, nil, msg, nil
	}
	if !rec.AcceptanceState.AllowRespond() {
		return nil, nil, "форма недоступна в текущем состоянии номинации", nil
	}
	questionRecs, err := i.questionStore.ListActiveByRelationship(rec.Relationship)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "ошибка получения вопросов")
	}
	draftRecs, err := i.draftStore.ListByNomination(nominationID)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "ошибка получения черновиков")
	}
	questions = make([]feedbackapimodels.QuestionView, 0, len(questionRecs))
	for _, q := range questionRecs {
		questions = append(questions, feedbackapimodels.QuestionConvert(q))
	}
	drafts = make([]feedbackapimodels.DraftView, 0, len(draftRecs))
	for _, d := range draftRecs {
		drafts = append(drafts, feedbackapimodels.DraftConvert(d))
	}
	return questions, drafts, "", nil
}

// SaveDraft - свободная перезапись черновика по одному вопросу.
// Первое сохранение переводит принятую номинацию в работу.
func (i impl) SaveDraft(nominationID, actorID string, data feedbackapimodels.DraftData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		nominationStore := nominationstore.NewInstance(tx)
		rec, err := nominationStore.GetByID(nominationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения номинации")
		}
		if rec == nil {
			hMsg = "номинация не найдена"
			return nil
		}
		if msg := checkReviewerAuthority(*rec, actorID); msg != "" {
			hMsg = msg
			return nil
		}
		if !rec.AcceptanceState.AllowRespond() {
			hMsg = "черновики недоступны в текущем состоянии номинации"
			return nil
		}
		err = draftstore.NewInstance(tx).Upsert(dbmodels.DraftResponse{
			NominationID: nominationID,
			QuestionID:   data.QuestionID,
			TextValue:    data.TextValue,
			RatingValue:  data.RatingValue,
			SavedAt:      time.Now(),
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения черновика")
		}
		if rec.AcceptanceState == models.AcceptanceStateAccepted {
			err = nominationStore.Update(nominationID, map[string]interface{}{
				"acceptance_state": models.AcceptanceStateInProgress,
			})
			if err != nil {
				return errors.Wrap(err, "ошибка перевода номинации в работу")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

// SubmitFinal - финальная отправка целиком.
// Либо записываются ответы на все вопросы категории и номинация завершается,
// либо не меняется ничего. Частичной отправки не существует.
func (i impl) SubmitFinal(nominationID, actorID string, data feedbackapimodels.FinalSubmitData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		nominationStore := nominationstore.NewInstance(tx)
		rec, err := nominationStore.GetByID(nominationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения номинации")
		}
		if rec == nil {
			hMsg = "номинация не найдена"
			return nil
		}
		if msg := checkReviewerAuthority(*rec, actorID); msg != "" {
			hMsg = msg
			return nil
		}
		if !rec.AcceptanceState.AllowRespond() {
			hMsg = "отправка недоступна в текущем состоянии номинации"
			return nil
		}
		questions, err := questionstore.NewInstance(tx).ListActiveByRelationship(rec.Relationship)
		if err != nil {
			return errors.Wrap(err, "ошибка получения вопросов")
		}
		if msg := ValidateFinal(questions, data.Responses); msg != "" {
			hMsg = msg
			return nil
		}
		now := time.Now()
		responses := make([]dbmodels.FeedbackResponse, 0, len(data.Responses))
		for _, resp := range data.Responses {
			responses = append(responses, dbmodels.FeedbackResponse{
				NominationID: nominationID,
				QuestionID:   resp.QuestionID,
				TextValue:    resp.TextValue,
				RatingValue:  resp.RatingValue,
				SubmittedAt:  now,
			})
		}
		err = responsestore.NewInstance(tx).CreateBatch(responses)
		if err != nil {
			return errors.Wrap(err, "ошибка записи финальных ответов")
		}
		err = draftstore.NewInstance(tx).DeleteByNomination(nominationID)
		if err != nil {
			return errors.Wrap(err, "ошибка удаления черновиков")
		}
		err = nominationStore.Update(nominationID, map[string]interface{}{
			"acceptance_state": models.AcceptanceStateCompleted,
			"completed_at":     &now,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка завершения номинации")
		}
		if rec.Requester != nil {
			err = notification.NewHandlerWithTx(tx).EnqueueFeedbackSubmitted(rec.Requester.Email, models.FeedbackSubmittedTemplateData{
				RequesterName: rec.Requester.GetFullName(),
				Relationship:  rec.Relationship.ToHuman(),
			})
			if err != nil {
				return errors.Wrap(err, "ошибка постановки уведомления в очередь")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

// ValidateFinal - проверка полноты финальной отправки.
// Каждый вопрос категории должен получить непустой ответ своего типа,
// ответы на посторонние вопросы не принимаются.
func ValidateFinal(questions []dbmodels.FeedbackQuestion, responses []feedbackapimodels.DraftData) (hMsg string) {
	byQuestion := make(map[string]feedbackapimodels.DraftData, len(responses))
	for _, resp := range responses {
		byQuestion[resp.QuestionID] = resp
	}
	if len(byQuestion) != len(responses) {
		return "повторяющиеся ответы на один вопрос"
	}
	for _, q := range questions {
		resp, ok := byQuestion[q.ID]
		if !ok {
			return fmt.Sprintf("нет ответа на вопрос: %v", q.Text)
		}
		switch q.Kind {
		case models.QuestionKindRating:
			if resp.RatingValue == nil {
				return fmt.Sprintf("нет оценки по вопросу: %v", q.Text)
			}
		case models.QuestionKindText:
			if resp.TextValue == "" {
				return fmt.Sprintf("нет ответа на вопрос: %v", q.Text)
			}
		}
		delete(byQuestion, q.ID)
	}
	if len(byQuestion) != 0 {
		return "ответы содержат посторонние вопросы"
	}
	return ""
}

func checkReviewerAuthority(rec dbmodels.Nomination, actorID string) (hMsg string) {
	if actorID == TokenActor || actorID == rec.ReviewerID {
		return ""
	}
	return "действие доступно только выдвинутому ревьюеру"
}
