package feedbackapimodels

import (
	"time"

	"github.com/pkg/errors"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

type EmployeeData struct {
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Team         string     `json:"team"`
	Designation  string     `json:"designation"`
	ManagerEmail string     `json:"manager_email"`
	JoinDate     *time.Time `json:"join_date"`
	IsExternal   bool       `json:"is_external"`
}

func (r EmployeeData) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта сотрудника")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указано имя сотрудника")
	}
	return nil
}

type EmployeeView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Team        string     `json:"team"`
	Designation string     `json:"designation"`
	JoinDate    *time.Time `json:"join_date,omitempty"`
	IsExternal  bool       `json:"is_external"`
	IsActive    bool       `json:"is_active"`
	Role        string     `json:"role"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	return EmployeeView{
		ID:          rec.ID,
		Email:       rec.Email,
		FullName:    rec.GetFullName(),
		Team:        rec.Team,
		Designation: rec.Designation,
		JoinDate:    rec.JoinDate,
		IsExternal:  rec.IsExternal,
		IsActive:    rec.IsActive,
		Role:        rec.Role.ToHuman(),
	}
}

// ReviewerView - кандидат в ревьюеры с признаками доступности для выдвижения
type ReviewerView struct {
	ID           string                  `json:"id"`
	FullName     string                  `json:"full_name"`
	Team         string                  `json:"team"`
	Designation  string                  `json:"designation"`
	Relationship models.RelationshipType `json:"relationship"`
	LoadCount    int                     `json:"load_count"`
	IsSelectable bool                    `json:"is_selectable"`
	BlockReason  string                  `json:"block_reason,omitempty"`
}
