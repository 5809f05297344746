package dbmodels

import "time"

// DraftResponse - черновик ответа, перезаписывается свободно.
// Уникален по паре (номинация, вопрос), сохранение работает как upsert.
type DraftResponse struct {
	BaseModel
	NominationID string `gorm:"type:varchar(36);uniqueIndex:idx_draft_response"`
	QuestionID   string `gorm:"type:varchar(36);uniqueIndex:idx_draft_response"`
	TextValue    string
	RatingValue  *int
	SavedAt      time.Time
}

// FeedbackResponse - финальный ответ, неизменяем после записи
type FeedbackResponse struct {
	BaseModel
	NominationID string `gorm:"type:varchar(36);index:idx_feedback_response"`
	QuestionID   string `gorm:"type:varchar(36)"`
	Question     *FeedbackQuestion
	TextValue    string
	RatingValue  *int
	SubmittedAt  time.Time
}
