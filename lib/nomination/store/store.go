package nominationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Nomination) (id string, err error)
	GetByID(id string) (rec *dbmodels.Nomination, err error)
	Update(id string, updMap map[string]interface{}) error
	FindActivePair(cycleID, requesterID, reviewerID string) (rec *dbmodels.Nomination, err error)
	CountActiveByRequester(cycleID, requesterID string) (count int64, err error)
	ListByRequester(cycleID, requesterID string) (list []dbmodels.Nomination, err error)
	ListPendingForManager(cycleID, managerID string) (list []dbmodels.Nomination, err error)
	ListOpenForReviewer(cycleID, reviewerID string) (list []dbmodels.Nomination, err error)
	ListPendingApproval(cycleID string) (list []dbmodels.Nomination, err error)
	ListAwaitingAcceptance(cycleID string) (list []dbmodels.Nomination, err error)
	ListOpenExternal(cycleID string) (list []dbmodels.Nomination, err error)
	CountByStates(cycleID string, approval models.ApprovalState, acceptance models.AcceptanceState) (count int64, err error)
	CollectOpenReviewers(cycleID string) (list []OpenReviewerRow, err error)
}

// OpenReviewerRow - ревьюер с незакрытыми ревью в цикле
type OpenReviewerRow struct {
	ReviewerID    string
	ReviewerName  string
	ReviewerEmail string
	OpenCount     int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Nomination) (id string, err error) {
	err = i.db.
		Omit("Requester", "Reviewer", "Cycle").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Nomination, error) {
	rec := dbmodels.Nomination{}
	err := i.db.
		Where("id = ?", id).
		Preload("Cycle").
		Preload("Requester").
		Preload("Requester.Manager").
		Preload("Reviewer").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Nomination{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// FindActivePair - нетерминальная номинация пары в цикле, для контроля дублей
func (i impl) FindActivePair(cycleID, requesterID, reviewerID string) (*dbmodels.Nomination, error) {
	rec := dbmodels.Nomination{}
	err := i.db.
		Where("cycle_id = ?", cycleID).
		Where("requester_id = ?", requesterID).
		Where("reviewer_id = ?", reviewerID).
		Where("approval_state != ?", models.ApprovalStateRejected).
		Where("acceptance_state != ?", models.AcceptanceStateDeclined).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) CountActiveByRequester(cycleID, requesterID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Nomination{}).
		Where("cycle_id = ?", cycleID).
		Where("requester_id = ?", requesterID).
		Where("approval_state != ?", models.ApprovalStateRejected).
		Where("acceptance_state != ?", models.AcceptanceStateDeclined).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListByRequester(cycleID, requesterID string) (list []dbmodels.Nomination, err error) {
	list = []dbmodels.Nomination{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Where("requester_id = ?", requesterID).
		Order("created_at ASC").
		Preload("Reviewer").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListPendingForManager - несогласованные номинации подчиненных руководителя
func (i impl) ListPendingForManager(cycleID, managerID string) (list []dbmodels.Nomination, err error) {
	list = []dbmodels.Nomination{}
	err = i.db.
		Joins("JOIN employees ON employees.id = nominations.requester_id").
		Where("employees.manager_id = ?", managerID).
		Where("nominations.cycle_id = ?", cycleID).
		Where("nominations.approval_state = ?", models.ApprovalStatePending).
		Order("nominations.created_at ASC").
		Preload("Requester").
		Preload("Reviewer").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListOpenForReviewer - согласованные и еще не закрытые назначения ревьюера
func (i impl) ListOpenForReviewer(cycleID, reviewerID string) (list []dbmodels.Nomination, err error) {
	list = []dbmodels.Nomination{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Where("reviewer_id = ?", reviewerID).
		Where("approval_state = ?", models.ApprovalStateApproved).
		Where("acceptance_state IN ?", []models.AcceptanceState{
			models.AcceptanceStatePending,
			models.AcceptanceStateAccepted,
			models.AcceptanceStateInProgress,
		}).
		Order("created_at ASC").
		Preload("Requester").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingApproval(cycleID string) (list []dbmodels.Nomination, err error) {
	list = []dbmodels.Nomination{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Where("approval_state = ?", models.ApprovalStatePending).
		Preload("Requester").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAwaitingAcceptance(cycleID string) (list []dbmodels.Nomination, err error) {
	list = []dbmodels.Nomination{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Where("approval_state = ?", models.ApprovalStateApproved).
		Where("acceptance_state = ?", models.AcceptanceStatePending).
		Preload("Reviewer").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListOpenExternal - незакрытые номинации внешних ревьюеров
func (i impl) ListOpenExternal(cycleID string) (list []dbmodels.Nomination, err error) {
	list = []dbmodels.Nomination{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Where("relationship = ?", models.RelationshipExternal).
		Where("approval_state = ?", models.ApprovalStateApproved).
		Where("acceptance_state NOT IN ?", []models.AcceptanceState{
			models.AcceptanceStateDeclined,
			models.AcceptanceStateCompleted,
		}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CollectOpenReviewers(cycleID string) (list []OpenReviewerRow, err error) {
	list = []OpenReviewerRow{}
	err = i.db.
		Table("nominations").
		Select(`employees.id AS reviewer_id,
			CONCAT(employees.first_name, ' ', employees.last_name) AS reviewer_name,
			employees.email AS reviewer_email,
			COUNT(nominations.id) AS open_count`).
		Joins("JOIN employees ON employees.id = nominations.reviewer_id").
		Where("nominations.cycle_id = ?", cycleID).
		Where("nominations.approval_state = ?", models.ApprovalStateApproved).
		Where("nominations.acceptance_state IN ?", []models.AcceptanceState{
			models.AcceptanceStatePending,
			models.AcceptanceStateAccepted,
			models.AcceptanceStateInProgress,
		}).
		Group("employees.id, employees.first_name, employees.last_name, employees.email").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByStates(cycleID string, approval models.ApprovalState, acceptance models.AcceptanceState) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Nomination{}).
		Where("cycle_id = ?", cycleID)
	if approval != "" {
		tx = tx.Where("approval_state = ?", approval)
	}
	if acceptance != "" {
		tx = tx.Where("acceptance_state = ?", acceptance)
	}
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
