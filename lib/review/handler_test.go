package review

import (
	"testing"

	"github.com/stretchr/testify/require"

	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

func question(id, text string, kind models.QuestionKind) dbmodels.FeedbackQuestion {
	rec := dbmodels.FeedbackQuestion{
		Text: text,
		Kind: kind,
	}
	rec.ID = id
	return rec
}

func TestValidateFinal(t *testing.T) {
	rating := 4
	questions := []dbmodels.FeedbackQuestion{
		question("q-1", "Оцените качество совместной работы", models.QuestionKindRating),
		question("q-2", "Что стоит улучшить?", models.QuestionKindText),
	}

	t.Run(`complete answers pass`, func(t *testing.T) {
		responses := []feedbackapimodels.DraftData{
			{QuestionID: "q-1", RatingValue: &rating},
			{QuestionID: "q-2", TextValue: "больше синхронизаций"},
		}
		require.Empty(t, ValidateFinal(questions, responses))
	})

	t.Run(`missing answer rejected`, func(t *testing.T) {
		responses := []feedbackapimodels.DraftData{
			{QuestionID: "q-1", RatingValue: &rating},
		}
		require.NotEmpty(t, ValidateFinal(questions, responses))
	})

	t.Run(`rating question without rating rejected`, func(t *testing.T) {
		responses := []feedbackapimodels.DraftData{
			{QuestionID: "q-1", TextValue: "без оценки"},
			{QuestionID: "q-2", TextValue: "текст"},
		}
		require.NotEmpty(t, ValidateFinal(questions, responses))
	})

	t.Run(`text question without text rejected`, func(t *testing.T) {
		responses := []feedbackapimodels.DraftData{
			{QuestionID: "q-1", RatingValue: &rating},
			{QuestionID: "q-2"},
		}
		require.NotEmpty(t, ValidateFinal(questions, responses))
	})

	t.Run(`extraneous question rejected`, func(t *testing.T) {
		responses := []feedbackapimodels.DraftData{
			{QuestionID: "q-1", RatingValue: &rating},
			{QuestionID: "q-2", TextValue: "текст"},
			{QuestionID: "q-3", TextValue: "лишний"},
		}
		require.NotEmpty(t, ValidateFinal(questions, responses))
	})

	t.Run(`duplicate answers rejected`, func(t *testing.T) {
		responses := []feedbackapimodels.DraftData{
			{QuestionID: "q-1", RatingValue: &rating},
			{QuestionID: "q-1", RatingValue: &rating},
			{QuestionID: "q-2", TextValue: "текст"},
		}
		require.NotEmpty(t, ValidateFinal(questions, responses))
	})
}

func TestCheckReviewerAuthority(t *testing.T) {
	rec := dbmodels.Nomination{ReviewerID: "emp-2"}

	t.Run(`reviewer allowed`, func(t *testing.T) {
		require.Empty(t, checkReviewerAuthority(rec, "emp-2"))
	})

	t.Run(`token actor allowed`, func(t *testing.T) {
		require.Empty(t, checkReviewerAuthority(rec, TokenActor))
	})

	t.Run(`other employee rejected`, func(t *testing.T) {
		require.NotEmpty(t, checkReviewerAuthority(rec, "emp-3"))
	})
}
