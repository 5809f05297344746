package feedbackapimodels

import (
	"time"

	"github.com/pkg/errors"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

// PendingReviewView - назначение в списке "ревью к выполнению"
type PendingReviewView struct {
	NominationID  string    `json:"nomination_id"`
	RequesterName string    `json:"requester_name"`
	RequesterTeam string    `json:"requester_team"`
	Relationship  string    `json:"relationship"`
	State         string    `json:"state"`
	DraftCount    int       `json:"draft_count"`
	RequestedAt   time.Time `json:"requested_at"`
}

type QuestionView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	SortOrder int    `json:"sort_order"`
}

func QuestionConvert(rec dbmodels.FeedbackQuestion) QuestionView {
	return QuestionView{
		ID:        rec.ID,
		Text:      rec.Text,
		Kind:      string(rec.Kind),
		SortOrder: rec.SortOrder,
	}
}

type QuestionData struct {
	Text         string `json:"text"`
	Kind         string `json:"kind"`
	Relationship string `json:"relationship"`
	SortOrder    int    `json:"sort_order"`
}

func (r QuestionData) Validate() error {
	if r.Text == "" {
		return errors.New("не указан текст вопроса")
	}
	if !models.QuestionKind(r.Kind).IsValid() {
		return errors.Errorf("неизвестный тип вопроса: %v", r.Kind)
	}
	switch models.RelationshipType(r.Relationship) {
	case models.RelationshipPeer, models.RelationshipInternal,
		models.RelationshipReportee, models.RelationshipExternal:
	default:
		return errors.Errorf("неизвестная категория отношений: %v", r.Relationship)
	}
	return nil
}

// DraftData - черновик ответа на один вопрос
type DraftData struct {
	QuestionID  string `json:"question_id"`
	TextValue   string `json:"text_value,omitempty"`
	RatingValue *int   `json:"rating_value,omitempty"`
}

func (r DraftData) Validate() error {
	if r.QuestionID == "" {
		return errors.New("не указан вопрос")
	}
	if r.RatingValue != nil && (*r.RatingValue < models.RatingMin || *r.RatingValue > models.RatingMax) {
		return errors.Errorf("оценка вне шкалы %d..%d", models.RatingMin, models.RatingMax)
	}
	return nil
}

// FinalSubmitData - финальная отправка, все вопросы категории за один раз
type FinalSubmitData struct {
	Responses []DraftData `json:"responses"`
}

func (r FinalSubmitData) Validate() error {
	if len(r.Responses) == 0 {
		return errors.New("не переданы ответы")
	}
	for _, resp := range r.Responses {
		if err := resp.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ReviewFormView - форма обратной связи: вопросы категории и сохраненные черновики
type ReviewFormView struct {
	Questions []QuestionView `json:"questions"`
	Drafts    []DraftView    `json:"drafts"`
}

type DraftView struct {
	QuestionID  string `json:"question_id"`
	TextValue   string `json:"text_value,omitempty"`
	RatingValue *int   `json:"rating_value,omitempty"`
}

func DraftConvert(rec dbmodels.DraftResponse) DraftView {
	return DraftView{
		QuestionID:  rec.QuestionID,
		TextValue:   rec.TextValue,
		RatingValue: rec.RatingValue,
	}
}
