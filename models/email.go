package models

type EmailKind string

const (
	EmailKindApprovalNeeded    EmailKind = "approval_needed"
	EmailKindRejectionNotice   EmailKind = "rejection_notice"
	EmailKindAcceptanceNeeded  EmailKind = "acceptance_needed"
	EmailKindExternalInvite    EmailKind = "external_invite"
	EmailKindSlotReleased      EmailKind = "slot_released"
	EmailKindFeedbackSubmitted EmailKind = "feedback_submitted"
	EmailKindReminder          EmailKind = "reminder"
	EmailKindDeadlineWarning   EmailKind = "deadline_warning"
)

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// Лимит попыток отправки одного письма
const EmailMaxAttempts = 3

type ApprovalNeededTemplateData struct {
	ManagerName   string
	RequesterName string
	ReviewerName  string
	Relationship  string
	Deadline      string
}

type RejectionNoticeTemplateData struct {
	RequesterName string
	ReviewerName  string
	Reason        string
}

type AcceptanceNeededTemplateData struct {
	ReviewerName  string
	RequesterName string
	Relationship  string
	Deadline      string
}

type ExternalInviteTemplateData struct {
	ReviewerName  string
	RequesterName string
	Token         string
	FormURL       string
	Deadline      string
}

type SlotReleasedTemplateData struct {
	RequesterName string
}

type FeedbackSubmittedTemplateData struct {
	RequesterName string
	Relationship  string
}

type ReminderTemplateData struct {
	ReviewerName string
	PendingCount int
	Deadline     string
}

type DeadlineWarningTemplateData struct {
	RecipientName string
	Phase         string
	Deadline      string
}
