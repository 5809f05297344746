package approval

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/db"
	rejectionstore "feedback360-backend/lib/approval/rejection-store"
	"feedback360-backend/lib/external"
	loadstore "feedback360-backend/lib/nomination/load-store"
	nominationstore "feedback360-backend/lib/nomination/store"
	"feedback360-backend/lib/notification"
	"feedback360-backend/lib/utils/helpers"
	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Approve(nominationID, actorID string) (hMsg string, err error)
	Reject(nominationID, actorID string, data feedbackapimodels.RejectData) (hMsg string, err error)
	BatchApprove(actorID string, data feedbackapimodels.BatchApproveData) (result []feedbackapimodels.BatchApproveResult, err error)
	ListPending(managerID, cycleID string) (list []feedbackapimodels.NominationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:              db.DB,
		nominationStore: nominationstore.NewInstance(db.DB),
	}
}

type impl struct {
	db              *gorm.DB
	nominationStore nominationstore.Provider
}

// Approve - переход pending -> approved.
// Для ручного действия правомочен только руководитель запросившего,
// автосогласование по дедлайну выполняется с актором models.AutoActor.
// Повторная обработка возвращает hMsg, а не ошибку: для сборки по дедлайнам
// это штатный пропуск.
func (i impl) Approve(nominationID, actorID string) (hMsg string, err error) {
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
		if !rec.ApprovalState.AllowApprove() {
			hMsg = "номинация уже обработана"
			return nil
		}
		if msg := checkManagerAuthority(*rec, actorID); msg != "" {
			hMsg = msg
			return nil
		}
		now := time.Now()
		err = nominationStore.Update(nominationID, map[string]interface{}{
			"approval_state": models.ApprovalStateApproved,
			"approved_by":    actorID,
			"approved_at":    &now,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения согласования")
		}
		return i.notifyApproved(tx, *rec)
	})
	if err != nil {
		return "", err
	}
	return hMsg, nil
}

// Reject - переход pending -> rejected с обязательной причиной.
// Пара пишется в реестр отклонений и блокируется до конца цикла,
// счетчик нагрузки ревьюера освобождается. Автоотклонения не существует.
func (i impl) Reject(nominationID, actorID string, data feedbackapimodels.RejectData) (hMsg string, err error) {
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
		if !rec.ApprovalState.AllowReject() {
			hMsg = "номинация уже обработана"
			return nil
		}
		if actorID == models.AutoActor {
			return errors.New("автоматическое отклонение не поддерживается")
		}
		if msg := checkManagerAuthority(*rec, actorID); msg != "" {
			hMsg = msg
			return nil
		}
		err = nominationStore.Update(nominationID, map[string]interface{}{
			"approval_state":   models.ApprovalStateRejected,
			"approved_by":      actorID,
			"rejection_reason": data.Reason,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения отклонения")
		}
		_, err = rejectionstore.NewInstance(tx).Create(dbmodels.RejectionRecord{
			CycleID:     rec.CycleID,
			RequesterID: rec.RequesterID,
			ReviewerID:  rec.ReviewerID,
			RejectedBy:  actorID,
			Reason:      data.Reason,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка записи в реестр отклонений")
		}
		err = loadstore.NewInstance(tx).Decrement(rec.CycleID, rec.ReviewerID)
		if err != nil {
			return errors.Wrap(err, "ошибка освобождения счетчика нагрузки")
		}
		if rec.Requester != nil && rec.Reviewer != nil {
			err = notification.NewHandlerWithTx(tx).EnqueueRejectionNotice(rec.Requester.Email, models.RejectionNoticeTemplateData{
				RequesterName: rec.Requester.GetFullName(),
				ReviewerName:  rec.Reviewer.GetFullName(),
				Reason:        data.Reason,
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

// BatchApprove - пакетное согласование, переходы независимы:
// отказ по одной номинации не откатывает остальные
func (i impl) BatchApprove(actorID string, data feedbackapimodels.BatchApproveData) (result []feedbackapimodels.BatchApproveResult, err error) {
	if err = data.Validate(); err != nil {
		return nil, err
	}
	result = make([]feedbackapimodels.BatchApproveResult, 0, len(data.NominationIDs))
	for _, id := range data.NominationIDs {
		hMsg, err := i.Approve(id, actorID)
		item := feedbackapimodels.BatchApproveResult{
			NominationID: id,
			Ok:           err == nil && hMsg == "",
			Message:      hMsg,
		}
		if err != nil {
			item.Message = "внутренняя ошибка согласования"
		}
		result = append(result, item)
	}
	return result, nil
}

func (i impl) ListPending(managerID, cycleID string) (list []feedbackapimodels.NominationView, err error) {
	recs, err := i.nominationStore.ListPendingForManager(cycleID, managerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения номинаций на согласовании")
	}
	list = make([]feedbackapimodels.NominationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.NominationConvert(rec))
	}
	return list, nil
}

// notifyApproved - после согласования ревьюер получает запрос решения,
// внешнему ревьюеру вместо этого выдается токен доступа к форме
func (i impl) notifyApproved(tx *gorm.DB, rec dbmodels.Nomination) error {
	if rec.Requester == nil || rec.Reviewer == nil || rec.Cycle == nil {
		return nil
	}
	deadline := helpers.FormatDate(rec.Cycle.FeedbackDeadline)
	if rec.Relationship == models.RelationshipExternal {
		token, err := external.NewHandlerWithTx(tx).IssueToken(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка выдачи токена внешнего ревьюера")
		}
		err = notification.NewHandlerWithTx(tx).EnqueueExternalInvite(rec.Reviewer.Email, models.ExternalInviteTemplateData{
			ReviewerName:  rec.Reviewer.GetFullName(),
			RequesterName: rec.Requester.GetFullName(),
			Token:         token,
			FormURL:       external.FormURL(),
			Deadline:      deadline,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка постановки приглашения в очередь")
		}
		return nil
	}
	err := notification.NewHandlerWithTx(tx).EnqueueAcceptanceNeeded(rec.Reviewer.Email, models.AcceptanceNeededTemplateData{
		ReviewerName:  rec.Reviewer.GetFullName(),
		RequesterName: rec.Requester.GetFullName(),
		Relationship:  rec.Relationship.ToHuman(),
		Deadline:      deadline,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка постановки уведомления в очередь")
	}
	return nil
}

func checkManagerAuthority(rec dbmodels.Nomination, actorID string) (hMsg string) {
	if actorID == models.AutoActor {
		return ""
	}
	if rec.Requester == nil || rec.Requester.ManagerID == nil || *rec.Requester.ManagerID != actorID {
		return "действие доступно только руководителю сотрудника"
	}
	return ""
}
