package dbmodels

import (
	"time"

	"feedback360-backend/models"
)

// DeadlineOverride - персональное продление дедлайна.
// Действует вместо дедлайна цикла только если позже него.
type DeadlineOverride struct {
	BaseModel
	CycleID     string               `gorm:"type:varchar(36);uniqueIndex:idx_deadline_override"`
	EmployeeID  string               `gorm:"type:varchar(36);uniqueIndex:idx_deadline_override"`
	Phase       models.OverridePhase `gorm:"type:varchar(50);uniqueIndex:idx_deadline_override"`
	NewDeadline time.Time
	Reason      string
	CreatedBy   string `gorm:"type:varchar(36)"`
}
