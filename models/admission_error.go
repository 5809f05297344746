package models

// AdmissionError - отказ контроллера допуска номинаций.
// Всегда восстановимая ошибка: причина возвращается вызывающему как есть,
// повторных попыток система не делает.
type AdmissionError string

const (
	AdmissionNominationClosed     AdmissionError = "NOMINATION_CLOSED"
	AdmissionSelfNomination       AdmissionError = "SELF_NOMINATION"
	AdmissionManagerBlocked       AdmissionError = "MANAGER_BLOCKED"
	AdmissionReviewerIneligible   AdmissionError = "REVIEWER_INELIGIBLE"
	AdmissionPreviouslyRejected   AdmissionError = "PREVIOUSLY_REJECTED"
	AdmissionDuplicateNomination  AdmissionError = "DUPLICATE_NOMINATION"
	AdmissionRequesterAtCapacity  AdmissionError = "REQUESTER_AT_CAPACITY"
	AdmissionReviewerAtCapacity   AdmissionError = "REVIEWER_AT_CAPACITY"
	AdmissionExternalNotPermitted AdmissionError = "EXTERNAL_NOT_PERMITTED"
)

var admissionHumanName = map[AdmissionError]string{
	AdmissionNominationClosed:     "Период выдвижения ревьюеров закрыт",
	AdmissionSelfNomination:       "Нельзя выдвинуть самого себя",
	AdmissionManagerBlocked:       "Непосредственный руководитель не может быть ревьюером",
	AdmissionReviewerIneligible:   "Сотрудник не может быть выдвинут ревьюером",
	AdmissionPreviouslyRejected:   "Кандидатура уже была отклонена руководителем в этом цикле",
	AdmissionDuplicateNomination:  "Номинация для этого ревьюера уже существует",
	AdmissionRequesterAtCapacity:  "Достигнут лимит номинаций на сотрудника",
	AdmissionReviewerAtCapacity:   "Ревьюер уже получил максимальное число номинаций",
	AdmissionExternalNotPermitted: "Внешних ревьюеров могут выдвигать только сотрудники уровня руководителя",
}

func (e AdmissionError) Error() string {
	return string(e)
}

func (e AdmissionError) ToHuman() string {
	if human, exist := admissionHumanName[e]; exist {
		return human
	}
	return string(e)
}
