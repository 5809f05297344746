package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"feedback360-backend/db"
	"feedback360-backend/lib/approval"
	cyclestore "feedback360-backend/lib/cycle/store"
	overridestore "feedback360-backend/lib/deadline/override-store"
	"feedback360-backend/lib/external"
	nominationstore "feedback360-backend/lib/nomination/store"
	"feedback360-backend/lib/notification"
	"feedback360-backend/lib/review"
	"feedback360-backend/lib/utils/helpers"
	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

// Окно предупреждения о приближении дедлайна обратной связи
const warningWindow = 48 * time.Hour

type Provider interface {
	PhaseFor(cycle dbmodels.ReviewCycle, employeeID string, now time.Time) (models.CyclePhase, error)
	NominationDeadlineFor(cycle dbmodels.ReviewCycle, employeeID string) (time.Time, error)
	FeedbackDeadlineFor(cycle dbmodels.ReviewCycle, employeeID string) (time.Time, error)
	GrantOverride(actorID, cycleID string, data feedbackapimodels.OverrideData) (hMsg string, err error)
	ListOverrides(cycleID string) (list []dbmodels.DeadlineOverride, err error)
	SendReminders() (sent int, err error)
	Sweep(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		cycleStore:      cyclestore.NewInstance(db.DB),
		overrideStore:   overridestore.NewInstance(db.DB),
		nominationStore: nominationstore.NewInstance(db.DB),
	}
}

type impl struct {
	cycleStore      cyclestore.Provider
	overrideStore   overridestore.Provider
	nominationStore nominationstore.Provider
}

func (i impl) PhaseFor(cycle dbmodels.ReviewCycle, employeeID string, now time.Time) (models.CyclePhase, error) {
	nomOverride, fbOverride, err := i.overridesFor(cycle.ID, employeeID)
	if err != nil {
		return "", err
	}
	return ComputePhase(now, cycle.NominationDeadline, cycle.FeedbackDeadline, nomOverride, fbOverride), nil
}

func (i impl) NominationDeadlineFor(cycle dbmodels.ReviewCycle, employeeID string) (time.Time, error) {
	rec, err := i.overrideStore.Get(cycle.ID, employeeID, models.OverridePhaseNomination)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "ошибка получения продления дедлайна")
	}
	if rec == nil {
		return EffectiveDeadline(cycle.NominationDeadline, nil), nil
	}
	return EffectiveDeadline(cycle.NominationDeadline, &rec.NewDeadline), nil
}

func (i impl) FeedbackDeadlineFor(cycle dbmodels.ReviewCycle, employeeID string) (time.Time, error) {
	rec, err := i.overrideStore.Get(cycle.ID, employeeID, models.OverridePhaseFeedback)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "ошибка получения продления дедлайна")
	}
	if rec == nil {
		return EffectiveDeadline(cycle.FeedbackDeadline, nil), nil
	}
	return EffectiveDeadline(cycle.FeedbackDeadline, &rec.NewDeadline), nil
}

func (i impl) GrantOverride(actorID, cycleID string, data feedbackapimodels.OverrideData) (hMsg string, err error) {
	phase := models.OverridePhase(data.Phase)
	if !phase.IsValid() {
		return fmt.Sprintf("неизвестная фаза продления: %v", data.Phase), nil
	}
	cycleRec, err := i.cycleStore.GetByID(cycleID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения цикла")
	}
	if cycleRec == nil {
		return "цикл не найден", nil
	}
	cycleDeadline := cycleRec.NominationDeadline
	if phase == models.OverridePhaseFeedback {
		cycleDeadline = cycleRec.FeedbackDeadline
	}
	// продление может только отодвигать дедлайн
	if !data.NewDeadline.After(cycleDeadline) {
		return "новый дедлайн должен быть позже дедлайна цикла", nil
	}
	err = i.overrideStore.Upsert(dbmodels.DeadlineOverride{
		CycleID:     cycleID,
		EmployeeID:  data.EmployeeID,
		Phase:       phase,
		NewDeadline: data.NewDeadline,
		Reason:      data.Reason,
		CreatedBy:   actorID,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения продления дедлайна")
	}
	return "", nil
}

func (i impl) ListOverrides(cycleID string) (list []dbmodels.DeadlineOverride, err error) {
	list, err = i.overrideStore.ListByCycle(cycleID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка продлений")
	}
	return list, nil
}

// SendReminders - напоминания ревьюерам с незакрытыми ревью в активном цикле.
// Запускается HR вручную, дубли за последние сутки не ставятся.
func (i impl) SendReminders() (sent int, err error) {
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return 0, nil
	}
	list, err := i.nominationStore.CollectOpenReviewers(cycleRec.ID)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка выборки ревьюеров с открытыми ревью")
	}
	_, fbOverrides, err := i.overrideMaps(cycleRec.ID)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	for _, rec := range list {
		already, err := notification.Instance.HasRecentByKind(rec.ReviewerEmail, models.EmailKindReminder, now.Add(-24*time.Hour))
		if err != nil {
			return sent, errors.Wrap(err, "ошибка проверки отправленных напоминаний")
		}
		if already {
			continue
		}
		deadline := effectiveFromMap(cycleRec.FeedbackDeadline, fbOverrides, rec.ReviewerID)
		err = notification.Instance.EnqueueReminder(rec.ReviewerEmail, models.ReminderTemplateData{
			ReviewerName: rec.ReviewerName,
			PendingCount: int(rec.OpenCount),
			Deadline:     helpers.FormatDate(deadline),
		})
		if err != nil {
			return sent, errors.Wrap(err, "ошибка постановки напоминания в очередь")
		}
		sent++
	}
	return sent, nil
}

// Sweep - массовые переходы по истекшим дедлайнам.
// Идемпотентен: уже переведенные номинации пропускаются без ошибок.
// Переходы выполняются через те же входные точки, что и ручные действия,
// отличается только актор.
func (i impl) Sweep(ctx context.Context) error {
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return nil
	}
	now := time.Now()
	nomOverrides, fbOverrides, err := i.overrideMaps(cycleRec.ID)
	if err != nil {
		return err
	}

	i.autoApprove(ctx, *cycleRec, nomOverrides, now)
	i.autoAccept(ctx, *cycleRec, nomOverrides, now)
	i.warnFeedbackDeadline(ctx, *cycleRec, fbOverrides, now)
	i.revokeExpiredTokens(ctx, *cycleRec, fbOverrides, now)
	return nil
}

// autoApprove - номинации, не согласованные руководителем до дедлайна
// выдвижения запросившего, согласуются автоматически
func (i impl) autoApprove(ctx context.Context, cycle dbmodels.ReviewCycle, nomOverrides map[string]time.Time, now time.Time) {
	logger := log.WithField("job", "deadline_sweep")
	list, err := i.nominationStore.ListPendingApproval(cycle.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка выборки несогласованных номинаций")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		deadline := effectiveFromMap(cycle.NominationDeadline, nomOverrides, rec.RequesterID)
		if !now.After(deadline) {
			continue
		}
		hMsg, err := approval.Instance.Approve(rec.ID, models.AutoActor)
		if err != nil {
			logger.WithError(err).WithField("nomination_id", rec.ID).Error("ошибка автосогласования номинации")
			continue
		}
		if hMsg != "" {
			logger.WithField("nomination_id", rec.ID).Infof("автосогласование пропущено: %v", hMsg)
		}
	}
}

// autoAccept - согласованные номинации без решения ревьюера после его
// дедлайна выдвижения принимаются автоматически
func (i impl) autoAccept(ctx context.Context, cycle dbmodels.ReviewCycle, nomOverrides map[string]time.Time, now time.Time) {
	logger := log.WithField("job", "deadline_sweep")
	list, err := i.nominationStore.ListAwaitingAcceptance(cycle.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка выборки номинаций без решения ревьюера")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		deadline := effectiveFromMap(cycle.NominationDeadline, nomOverrides, rec.ReviewerID)
		if !now.After(deadline) {
			continue
		}
		hMsg, err := review.Instance.Accept(rec.ID, models.AutoActor)
		if err != nil {
			logger.WithError(err).WithField("nomination_id", rec.ID).Error("ошибка автопринятия номинации")
			continue
		}
		if hMsg != "" {
			logger.WithField("nomination_id", rec.ID).Infof("автопринятие пропущено: %v", hMsg)
		}
	}
}

// warnFeedbackDeadline - предупреждения ревьюерам с незакрытыми ревью
// незадолго до дедлайна обратной связи, не чаще раза в сутки
func (i impl) warnFeedbackDeadline(ctx context.Context, cycle dbmodels.ReviewCycle, fbOverrides map[string]time.Time, now time.Time) {
	logger := log.WithField("job", "deadline_sweep")
	list, err := i.nominationStore.CollectOpenReviewers(cycle.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка выборки ревьюеров с открытыми ревью")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		deadline := effectiveFromMap(cycle.FeedbackDeadline, fbOverrides, rec.ReviewerID)
		if now.After(deadline) || deadline.Sub(now) > warningWindow {
			continue
		}
		already, err := notification.Instance.HasRecentByKind(rec.ReviewerEmail, models.EmailKindDeadlineWarning, now.Add(-24*time.Hour))
		if err != nil {
			logger.WithError(err).Error("ошибка проверки отправленных предупреждений")
			continue
		}
		if already {
			continue
		}
		err = notification.Instance.EnqueueDeadlineWarning(rec.ReviewerEmail, models.DeadlineWarningTemplateData{
			RecipientName: rec.ReviewerName,
			Phase:         models.CyclePhaseFeedback.ToHuman(),
			Deadline:      helpers.FormatDate(deadline),
		})
		if err != nil {
			logger.WithError(err).WithField("reviewer_id", rec.ReviewerID).Error("ошибка постановки предупреждения в очередь")
		}
	}
}

// revokeExpiredTokens - токены внешних ревьюеров гасятся после дедлайна
// обратной связи, форма по просроченной ссылке недоступна
func (i impl) revokeExpiredTokens(ctx context.Context, cycle dbmodels.ReviewCycle, fbOverrides map[string]time.Time, now time.Time) {
	logger := log.WithField("job", "deadline_sweep")
	list, err := i.nominationStore.ListOpenExternal(cycle.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка выборки номинаций внешних ревьюеров")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		deadline := effectiveFromMap(cycle.FeedbackDeadline, fbOverrides, rec.ReviewerID)
		if !now.After(deadline) {
			continue
		}
		if err = external.Instance.RevokeByNomination(rec.ID); err != nil {
			logger.WithError(err).WithField("nomination_id", rec.ID).Error("ошибка отзыва токенов")
		}
	}
}

func (i impl) overridesFor(cycleID, employeeID string) (nomOverride, fbOverride *time.Time, err error) {
	nomRec, err := i.overrideStore.Get(cycleID, employeeID, models.OverridePhaseNomination)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения продления дедлайна")
	}
	fbRec, err := i.overrideStore.Get(cycleID, employeeID, models.OverridePhaseFeedback)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения продления дедлайна")
	}
	if nomRec != nil {
		nomOverride = &nomRec.NewDeadline
	}
	if fbRec != nil {
		fbOverride = &fbRec.NewDeadline
	}
	return nomOverride, fbOverride, nil
}

func (i impl) overrideMaps(cycleID string) (nomOverrides, fbOverrides map[string]time.Time, err error) {
	list, err := i.overrideStore.ListByCycle(cycleID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения списка продлений")
	}
	nomOverrides = map[string]time.Time{}
	fbOverrides = map[string]time.Time{}
	for _, rec := range list {
		switch rec.Phase {
		case models.OverridePhaseNomination:
			nomOverrides[rec.EmployeeID] = rec.NewDeadline
		case models.OverridePhaseFeedback:
			fbOverrides[rec.EmployeeID] = rec.NewDeadline
		}
	}
	return nomOverrides, fbOverrides, nil
}

func effectiveFromMap(cycleDeadline time.Time, overrides map[string]time.Time, employeeID string) time.Time {
	if override, ok := overrides[employeeID]; ok {
		return EffectiveDeadline(cycleDeadline, &override)
	}
	return EffectiveDeadline(cycleDeadline, nil)
}
