package feedbackapimodels

import "time"

// ProgressView - агрегатные счетчики без идентичности ревьюеров
type ProgressView struct {
	TotalRequested  int `json:"total_requested"`
	Completed       int `json:"completed"`
	PendingApproval int `json:"pending_approval"`
	PendingReview   int `json:"pending_review"`
}

// ResponseView - ответ на вопрос в анонимизированной выдаче
type ResponseView struct {
	QuestionText string `json:"question_text"`
	QuestionKind string `json:"question_kind"`
	TextValue    string `json:"text_value,omitempty"`
	RatingValue  *int   `json:"rating_value,omitempty"`
}

// ReceivedFeedbackView - полученная обратная связь по одной номинации.
// Идентичность ревьюера в проекцию не попадает.
type ReceivedFeedbackView struct {
	Relationship string         `json:"relationship"`
	CompletedAt  *time.Time     `json:"completed_at"`
	Responses    []ResponseView `json:"responses"`
}

// AuditFeedbackView - выдача для HR-аудита, единственный путь с
// идентичностью ревьюера
type AuditFeedbackView struct {
	NominationID  string         `json:"nomination_id"`
	RequesterName string         `json:"requester_name"`
	ReviewerName  string         `json:"reviewer_name"`
	Relationship  string         `json:"relationship"`
	CompletedAt   *time.Time     `json:"completed_at"`
	Responses     []ResponseView `json:"responses"`
}

// RatingSummaryView - средняя оценка по одному вопросу
type RatingSummaryView struct {
	QuestionText string  `json:"question_text"`
	AvgRating    float64 `json:"avg_rating"`
	Responses    int64   `json:"responses"`
}

// FeedbackSummaryView - сводка по полученным оценкам.
// Средние считаются по всем завершенным ревью, без разреза по авторам.
type FeedbackSummaryView struct {
	CompletedReviews int64               `json:"completed_reviews"`
	Ratings          []RatingSummaryView `json:"ratings"`
}

// DashboardView - метрики для HR
type DashboardView struct {
	ActiveEmployees  int64 `json:"active_employees"`
	PendingApprovals int64 `json:"pending_approvals"`
	OpenReviews      int64 `json:"open_reviews"`
	CompletedInCycle int64 `json:"completed_in_cycle"`
}
