package dbmodels

import "feedback360-backend/models"

type FeedbackQuestion struct {
	BaseModel
	Text         string                  `gorm:"type:varchar(1000)"`
	Kind         models.QuestionKind     `gorm:"type:varchar(50)"`
	Relationship models.RelationshipType `gorm:"type:varchar(100);index"`
	SortOrder    int
	IsActive     bool
}
