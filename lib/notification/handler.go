package notification

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"feedback360-backend/config"
	"feedback360-backend/db"
	notificationstore "feedback360-backend/lib/notification/store"
	"feedback360-backend/lib/smtp"
	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	EnqueueApprovalNeeded(toEmail string, data models.ApprovalNeededTemplateData) error
	EnqueueRejectionNotice(toEmail string, data models.RejectionNoticeTemplateData) error
	EnqueueAcceptanceNeeded(toEmail string, data models.AcceptanceNeededTemplateData) error
	EnqueueExternalInvite(toEmail string, data models.ExternalInviteTemplateData) error
	EnqueueSlotReleased(toEmail string, data models.SlotReleasedTemplateData) error
	EnqueueFeedbackSubmitted(toEmail string, data models.FeedbackSubmittedTemplateData) error
	EnqueueReminder(toEmail string, data models.ReminderTemplateData) error
	EnqueueDeadlineWarning(toEmail string, data models.DeadlineWarningTemplateData) error
	HasRecentByKind(toEmail string, kind models.EmailKind, since time.Time) (bool, error)
	ProcessQueue(ctx context.Context)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx - постановка писем в очередь внутри транзакции перехода
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: notificationstore.NewInstance(tx),
	}
}

type impl struct {
	store notificationstore.Provider
}

func (i impl) EnqueueApprovalNeeded(toEmail string, data models.ApprovalNeededTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindApprovalNeeded, "Требуется согласование номинации", approvalNeededTpl, data)
}

func (i impl) EnqueueRejectionNotice(toEmail string, data models.RejectionNoticeTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindRejectionNotice, "Номинация отклонена", rejectionNoticeTpl, data)
}

func (i impl) EnqueueAcceptanceNeeded(toEmail string, data models.AcceptanceNeededTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindAcceptanceNeeded, "Запрос обратной связи", acceptanceNeededTpl, data)
}

func (i impl) EnqueueExternalInvite(toEmail string, data models.ExternalInviteTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindExternalInvite, "Приглашение дать обратную связь", externalInviteTpl, data)
}

func (i impl) EnqueueSlotReleased(toEmail string, data models.SlotReleasedTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindSlotReleased, "Освободился слот номинации", slotReleasedTpl, data)
}

func (i impl) EnqueueFeedbackSubmitted(toEmail string, data models.FeedbackSubmittedTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindFeedbackSubmitted, "Получена обратная связь", feedbackSubmittedTpl, data)
}

func (i impl) EnqueueReminder(toEmail string, data models.ReminderTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindReminder, "Напоминание о незавершенных ревью", reminderTpl, data)
}

func (i impl) EnqueueDeadlineWarning(toEmail string, data models.DeadlineWarningTemplateData) error {
	return i.enqueue(toEmail, models.EmailKindDeadlineWarning, "Приближается дедлайн", deadlineWarningTpl, data)
}

func (i impl) HasRecentByKind(toEmail string, kind models.EmailKind, since time.Time) (bool, error) {
	count, err := i.store.CountRecentByKind(toEmail, kind, since)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) enqueue(toEmail string, kind models.EmailKind, subject, tpl string, data interface{}) error {
	body, err := renderTemplate(string(kind), tpl, data)
	if err != nil {
		return err
	}
	_, err = i.store.Create(dbmodels.EmailQueue{
		RecipientEmail: toEmail,
		Kind:           kind,
		Subject:        subject,
		Body:           body,
		Status:         models.EmailStatusPending,
	})
	if err != nil {
		return err
	}
	return nil
}

// ProcessQueue - выборка пачки неотправленных писем и отправка через smtp.
// Ошибка отправки не останавливает обработку пачки, попытки считаются по письму.
func (i impl) ProcessQueue(ctx context.Context) {
	logger := log.WithField("job", "email_queue")
	list, err := i.store.ListPending(config.Conf.Policy.EmailBatchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка выборки очереди писем")
		return
	}
	for _, rec := range list {
		select {
		case <-ctx.Done():
			return
		default:
		}
		err = smtp.Instance.SendEMail(config.Conf.Smtp.From, rec.RecipientEmail, rec.Body, rec.Subject)
		if err != nil {
			attempt := rec.Attempts + 1
			markErr := i.store.MarkFailed(rec.ID, attempt, err.Error())
			if markErr != nil {
				logger.WithError(markErr).WithField("email_id", rec.ID).Error("ошибка фиксации неудачной отправки")
			}
			continue
		}
		err = i.store.MarkSent(rec.ID)
		if err != nil {
			logger.WithError(err).WithField("email_id", rec.ID).Error("ошибка фиксации отправки письма")
		}
	}
}
