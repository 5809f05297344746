package dbmodels

import "time"

type ReviewCycle struct {
	BaseModel
	Name               string `gorm:"type:varchar(255)"`
	NominationStart    time.Time
	NominationDeadline time.Time
	FeedbackDeadline   time.Time
	IsActive           bool `gorm:"index"`
	CreatedBy          string `gorm:"type:varchar(36)"`
}
