package models

// Актор автоматических переходов по дедлайну
const AutoActor = "auto"

type ApprovalState string

const (
	ApprovalStatePending  ApprovalState = "pending"
	ApprovalStateApproved ApprovalState = "approved"
	ApprovalStateRejected ApprovalState = "rejected"
)

var approvalHumanName = map[ApprovalState]string{
	ApprovalStatePending:  "Ожидает согласования",
	ApprovalStateApproved: "Согласована",
	ApprovalStateRejected: "Отклонена",
}

func (s ApprovalState) ToHuman() string {
	if human, exist := approvalHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalState) AllowApprove() bool {
	return s == ApprovalStatePending
}

func (s ApprovalState) AllowReject() bool {
	return s == ApprovalStatePending
}

type AcceptanceState string

const (
	// AcceptanceStatePending - решение ревьюером еще не принято
	AcceptanceStatePending    AcceptanceState = "pending"
	AcceptanceStateAccepted   AcceptanceState = "accepted"
	AcceptanceStateDeclined   AcceptanceState = "declined"
	AcceptanceStateInProgress AcceptanceState = "in_progress"
	AcceptanceStateCompleted  AcceptanceState = "completed"
)

var acceptanceHumanName = map[AcceptanceState]string{
	AcceptanceStatePending:    "Ожидает решения ревьюера",
	AcceptanceStateAccepted:   "Принята",
	AcceptanceStateDeclined:   "Отклонена ревьюером",
	AcceptanceStateInProgress: "В работе",
	AcceptanceStateCompleted:  "Завершена",
}

func (s AcceptanceState) ToHuman() string {
	if human, exist := acceptanceHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s AcceptanceState) AllowDecision() bool {
	return s == AcceptanceStatePending
}

func (s AcceptanceState) AllowRespond() bool {
	return s == AcceptanceStateAccepted || s == AcceptanceStateInProgress
}

// IsActive - номинация учитывается в счетчике нагрузки ревьюера
func (s AcceptanceState) IsActive() bool {
	return s != AcceptanceStateDeclined
}
