package deadline

import (
	"time"

	"feedback360-backend/lib/utils/helpers"
	"feedback360-backend/models"
)

// EffectiveDeadline - дедлайн с учетом персонального продления.
// Продление действует только если позже дедлайна цикла, сокращать срок нельзя.
// Дедлайн задан датой и действует включительно до конца дня.
func EffectiveDeadline(cycleDeadline time.Time, override *time.Time) time.Time {
	deadline := cycleDeadline
	if override != nil && override.After(deadline) {
		deadline = *override
	}
	return helpers.EndOfDay(deadline)
}

// ComputePhase - фаза цикла для конкретного сотрудника.
// Фаз всего две, после обоих дедлайнов цикл закрыт.
func ComputePhase(now, nominationDeadline, feedbackDeadline time.Time, nominationOverride, feedbackOverride *time.Time) models.CyclePhase {
	if !now.After(EffectiveDeadline(nominationDeadline, nominationOverride)) {
		return models.CyclePhaseNomination
	}
	if !now.After(EffectiveDeadline(feedbackDeadline, feedbackOverride)) {
		return models.CyclePhaseFeedback
	}
	return models.CyclePhaseClosed
}
