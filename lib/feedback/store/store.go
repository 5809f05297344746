package feedbackstore

import (
	"time"

	"gorm.io/gorm"

	"feedback360-backend/models"
)

// AnonymousRow - ответ в обезличенной проекции, без колонок ревьюера.
// Проекция формируется на уровне SQL, ревьюер в выборку не попадает.
type AnonymousRow struct {
	NominationID string
	Relationship models.RelationshipType
	CompletedAt  *time.Time
	QuestionID   string
	QuestionText string
	QuestionKind models.QuestionKind
	RatingValue  *int
	TextValue    string
}

// AuditRow - проекция для HR-аудита, с ревьюером
type AuditRow struct {
	NominationID  string
	RequesterName string
	ReviewerID    string
	ReviewerName  string
	ReviewerEmail string
	Relationship  models.RelationshipType
	CompletedAt   *time.Time
	QuestionText  string
	RatingValue   *int
	TextValue     string
	SubmittedAt   time.Time
}

// RatingAggregate - средняя оценка по вопросу
type RatingAggregate struct {
	QuestionID   string
	QuestionText string
	AvgRating    float64
	Responses    int64
}

type Provider interface {
	ListAnonymous(cycleID, subjectID string) (list []AnonymousRow, err error)
	AggregateRatings(cycleID, subjectID string) (list []RatingAggregate, err error)
	ListForAudit(cycleID, subjectID string) (list []AuditRow, err error)
	CountCompletedForSubject(cycleID, subjectID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListAnonymous(cycleID, subjectID string) (list []AnonymousRow, err error) {
	list = []AnonymousRow{}
	err = i.db.
		Table("feedback_responses").
		Select(`nominations.id AS nomination_id,
			nominations.relationship AS relationship,
			nominations.completed_at AS completed_at,
			feedback_questions.id AS question_id,
			feedback_questions.text AS question_text,
			feedback_questions.kind AS question_kind,
			feedback_responses.rating_value,
			feedback_responses.text_value`).
		Joins("JOIN nominations ON nominations.id = feedback_responses.nomination_id").
		Joins("JOIN feedback_questions ON feedback_questions.id = feedback_responses.question_id").
		Where("nominations.cycle_id = ?", cycleID).
		Where("nominations.requester_id = ?", subjectID).
		Where("nominations.acceptance_state = ?", models.AcceptanceStateCompleted).
		Order("nominations.completed_at ASC, nominations.id ASC, feedback_questions.sort_order ASC").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AggregateRatings(cycleID, subjectID string) (list []RatingAggregate, err error) {
	list = []RatingAggregate{}
	err = i.db.
		Table("feedback_responses").
		Select(`feedback_questions.id AS question_id,
			feedback_questions.text AS question_text,
			AVG(feedback_responses.rating_value) AS avg_rating,
			COUNT(feedback_responses.id) AS responses`).
		Joins("JOIN nominations ON nominations.id = feedback_responses.nomination_id").
		Joins("JOIN feedback_questions ON feedback_questions.id = feedback_responses.question_id").
		Where("nominations.cycle_id = ?", cycleID).
		Where("nominations.requester_id = ?", subjectID).
		Where("nominations.acceptance_state = ?", models.AcceptanceStateCompleted).
		Where("feedback_responses.rating_value IS NOT NULL").
		Group("feedback_questions.id, feedback_questions.text, feedback_questions.sort_order").
		Order("feedback_questions.sort_order ASC").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForAudit(cycleID, subjectID string) (list []AuditRow, err error) {
	list = []AuditRow{}
	err = i.db.
		Table("feedback_responses").
		Select(`nominations.id AS nomination_id,
			CONCAT(requesters.first_name, ' ', requesters.last_name) AS requester_name,
			reviewers.id AS reviewer_id,
			CONCAT(reviewers.first_name, ' ', reviewers.last_name) AS reviewer_name,
			reviewers.email AS reviewer_email,
			nominations.relationship AS relationship,
			nominations.completed_at AS completed_at,
			feedback_questions.text AS question_text,
			feedback_responses.rating_value,
			feedback_responses.text_value,
			feedback_responses.submitted_at`).
		Joins("JOIN nominations ON nominations.id = feedback_responses.nomination_id").
		Joins("JOIN employees requesters ON requesters.id = nominations.requester_id").
		Joins("JOIN employees reviewers ON reviewers.id = nominations.reviewer_id").
		Joins("JOIN feedback_questions ON feedback_questions.id = feedback_responses.question_id").
		Where("nominations.cycle_id = ?", cycleID).
		Where("nominations.requester_id = ?", subjectID).
		Where("nominations.acceptance_state = ?", models.AcceptanceStateCompleted).
		Order("nominations.id ASC, feedback_questions.sort_order ASC").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountCompletedForSubject(cycleID, subjectID string) (count int64, err error) {
	err = i.db.
		Table("nominations").
		Where("cycle_id = ?", cycleID).
		Where("requester_id = ?", subjectID).
		Where("acceptance_state = ?", models.AcceptanceStateCompleted).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
