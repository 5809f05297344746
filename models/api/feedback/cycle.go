package feedbackapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "feedback360-backend/models/db"
)

type CycleData struct {
	Name               string    `json:"name"`
	NominationStart    time.Time `json:"nomination_start"`
	NominationDeadline time.Time `json:"nomination_deadline"`
	FeedbackDeadline   time.Time `json:"feedback_deadline"`
}

func (r CycleData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название цикла")
	}
	if r.NominationDeadline.Before(r.NominationStart) {
		return errors.New("дедлайн выдвижения раньше начала цикла")
	}
	if r.FeedbackDeadline.Before(r.NominationDeadline) {
		return errors.New("дедлайн обратной связи раньше дедлайна выдвижения")
	}
	return nil
}

type CycleView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	NominationStart    time.Time `json:"nomination_start"`
	NominationDeadline time.Time `json:"nomination_deadline"`
	FeedbackDeadline   time.Time `json:"feedback_deadline"`
	IsActive           bool      `json:"is_active"`
	Phase              string    `json:"phase,omitempty"`
}

func CycleConvert(rec dbmodels.ReviewCycle) CycleView {
	return CycleView{
		ID:                 rec.ID,
		Name:               rec.Name,
		NominationStart:    rec.NominationStart,
		NominationDeadline: rec.NominationDeadline,
		FeedbackDeadline:   rec.FeedbackDeadline,
		IsActive:           rec.IsActive,
	}
}

type OverrideData struct {
	EmployeeID  string    `json:"employee_id"`
	Phase       string    `json:"phase"`
	NewDeadline time.Time `json:"new_deadline"`
	Reason      string    `json:"reason"`
}

func (r OverrideData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Reason == "" {
		return errors.New("не указана причина продления")
	}
	if r.NewDeadline.IsZero() {
		return errors.New("не указан новый дедлайн")
	}
	return nil
}
