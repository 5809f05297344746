package models

type QuestionKind string

const (
	QuestionKindRating QuestionKind = "rating"
	QuestionKindText   QuestionKind = "text"
)

func (k QuestionKind) IsValid() bool {
	switch k {
	case QuestionKindRating, QuestionKindText:
		return true
	}
	return false
}

const (
	RatingMin = 1
	RatingMax = 5
)
