package models

// CyclePhase - фаза активного цикла с учетом персональных продлений
type CyclePhase string

const (
	CyclePhaseNomination CyclePhase = "nomination"
	CyclePhaseFeedback   CyclePhase = "feedback"
	CyclePhaseClosed     CyclePhase = "closed"
)

var phaseHumanName = map[CyclePhase]string{
	CyclePhaseNomination: "Выдвижение ревьюеров",
	CyclePhaseFeedback:   "Сбор обратной связи",
	CyclePhaseClosed:     "Цикл завершен",
}

func (p CyclePhase) ToHuman() string {
	if human, exist := phaseHumanName[p]; exist {
		return human
	}
	return string(p)
}

// OverridePhase - к какому дедлайну относится персональное продление
type OverridePhase string

const (
	OverridePhaseNomination OverridePhase = "nomination"
	OverridePhaseFeedback   OverridePhase = "feedback"
)

func (p OverridePhase) IsValid() bool {
	switch p {
	case OverridePhaseNomination, OverridePhaseFeedback:
		return true
	}
	return false
}
