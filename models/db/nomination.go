package dbmodels

import (
	"time"

	"feedback360-backend/models"
)

// Nomination - центральная сущность процесса. Никогда не удаляется,
// остается постоянной записью аудита.
type Nomination struct {
	BaseModel
	CycleID     string `gorm:"type:varchar(36);index:idx_nomination_cycle"`
	Cycle       *ReviewCycle
	RequesterID string `gorm:"type:varchar(36);index:idx_nomination_requester"`
	Requester   *Employee `gorm:"foreignKey:RequesterID"`
	ReviewerID  string `gorm:"type:varchar(36);index:idx_nomination_reviewer"`
	Reviewer    *Employee `gorm:"foreignKey:ReviewerID"`

	// Категория фиксируется при создании и далее не пересчитывается
	Relationship models.RelationshipType `gorm:"type:varchar(100)"`

	ApprovalState   models.ApprovalState `gorm:"type:varchar(50);index"`
	ApprovedBy      string               `gorm:"type:varchar(36)"`
	RejectionReason string
	ApprovedAt      *time.Time

	AcceptanceState models.AcceptanceState `gorm:"type:varchar(50);index"`
	DeclineReason   string
	AcceptedAt      *time.Time
	CompletedAt     *time.Time
}

// IsTerminal - из терминального состояния переходы невозможны
func (n Nomination) IsTerminal() bool {
	return n.ApprovalState == models.ApprovalStateRejected ||
		n.AcceptanceState == models.AcceptanceStateDeclined ||
		n.AcceptanceState == models.AcceptanceStateCompleted
}

// CountsTowardCapacity - учитывается в лимитах запросившего и ревьюера
func (n Nomination) CountsTowardCapacity() bool {
	return n.ApprovalState != models.ApprovalStateRejected &&
		n.AcceptanceState != models.AcceptanceStateDeclined
}
