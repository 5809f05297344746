package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedback360-backend/models"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestEffectiveDeadline(t *testing.T) {
	cycleDeadline := date("2025-01-15")

	t.Run(`deadline is inclusive to end of day`, func(t *testing.T) {
		effective := EffectiveDeadline(cycleDeadline, nil)
		require.Equal(t, 23, effective.Hour())
		require.Equal(t, 15, effective.Day())
	})

	t.Run(`override extends deadline`, func(t *testing.T) {
		override := date("2025-01-20")
		effective := EffectiveDeadline(cycleDeadline, &override)
		require.Equal(t, 20, effective.Day())
	})

	t.Run(`override can not shorten deadline`, func(t *testing.T) {
		override := date("2025-01-10")
		effective := EffectiveDeadline(cycleDeadline, &override)
		require.Equal(t, 15, effective.Day())
	})
}

func TestComputePhase(t *testing.T) {
	nominationDeadline := date("2025-01-15")
	feedbackDeadline := date("2025-02-15")

	t.Run(`nomination phase until end of deadline day`, func(t *testing.T) {
		now := date("2025-01-15").Add(22 * time.Hour)
		phase := ComputePhase(now, nominationDeadline, feedbackDeadline, nil, nil)
		require.Equal(t, models.CyclePhaseNomination, phase)
	})

	t.Run(`feedback phase on the next day`, func(t *testing.T) {
		now := date("2025-01-16")
		phase := ComputePhase(now, nominationDeadline, feedbackDeadline, nil, nil)
		require.Equal(t, models.CyclePhaseFeedback, phase)
	})

	t.Run(`override keeps nomination phase open`, func(t *testing.T) {
		override := date("2025-01-20")
		now := date("2025-01-18")
		phase := ComputePhase(now, nominationDeadline, feedbackDeadline, &override, nil)
		require.Equal(t, models.CyclePhaseNomination, phase)

		now = date("2025-01-21")
		phase = ComputePhase(now, nominationDeadline, feedbackDeadline, &override, nil)
		require.Equal(t, models.CyclePhaseFeedback, phase)
	})

	t.Run(`closed after feedback deadline`, func(t *testing.T) {
		now := date("2025-02-16")
		phase := ComputePhase(now, nominationDeadline, feedbackDeadline, nil, nil)
		require.Equal(t, models.CyclePhaseClosed, phase)
	})

	t.Run(`feedback override delays closing`, func(t *testing.T) {
		override := date("2025-02-20")
		now := date("2025-02-18")
		phase := ComputePhase(now, nominationDeadline, feedbackDeadline, nil, &override)
		require.Equal(t, models.CyclePhaseFeedback, phase)
	})
}
