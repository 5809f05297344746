package feedbackapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "feedback360-backend/models/db"
)

type NominationData struct {
	ReviewerID string `json:"reviewer_id"`
}

func (r NominationData) Validate() error {
	if r.ReviewerID == "" {
		return errors.New("не указан ревьюер")
	}
	return nil
}

type RejectData struct {
	Reason string `json:"reason"`
}

func (r RejectData) Validate() error {
	if r.Reason == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type DeclineData struct {
	Reason string `json:"reason"`
}

func (r DeclineData) Validate() error {
	if r.Reason == "" {
		return errors.New("не указана причина отказа")
	}
	return nil
}

type BatchApproveData struct {
	NominationIDs []string `json:"nomination_ids"`
}

func (r BatchApproveData) Validate() error {
	if len(r.NominationIDs) == 0 {
		return errors.New("не указаны номинации")
	}
	return nil
}

// NominationView - представление для запросившего и руководителя
type NominationView struct {
	ID              string     `json:"id"`
	RequesterName   string     `json:"requester_name"`
	ReviewerName    string     `json:"reviewer_name"`
	ReviewerTeam    string     `json:"reviewer_team,omitempty"`
	Relationship    string     `json:"relationship"`
	ApprovalState   string     `json:"approval_state"`
	AcceptanceState string     `json:"acceptance_state"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func NominationConvert(rec dbmodels.Nomination) NominationView {
	view := NominationView{
		ID:              rec.ID,
		Relationship:    rec.Relationship.ToHuman(),
		ApprovalState:   rec.ApprovalState.ToHuman(),
		AcceptanceState: rec.AcceptanceState.ToHuman(),
		RejectionReason: rec.RejectionReason,
		CreatedAt:       rec.CreatedAt,
		CompletedAt:     rec.CompletedAt,
	}
	if rec.Requester != nil {
		view.RequesterName = rec.Requester.GetFullName()
	}
	if rec.Reviewer != nil {
		view.ReviewerName = rec.Reviewer.GetFullName()
		view.ReviewerTeam = rec.Reviewer.Team
	}
	return view
}

// BatchApproveResult - итог пакетного согласования, переходы независимы
type BatchApproveResult struct {
	NominationID string `json:"nomination_id"`
	Ok           bool   `json:"ok"`
	Message      string `json:"message,omitempty"`
}
