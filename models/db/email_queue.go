package dbmodels

import (
	"time"

	"feedback360-backend/models"
)

// EmailQueue - исходящее письмо. Постановка в очередь выполняется в
// транзакции перехода, отправка - воркером вне транзакции.
type EmailQueue struct {
	BaseModel
	RecipientEmail string             `gorm:"type:varchar(255)"`
	Kind           models.EmailKind   `gorm:"type:varchar(100);index"`
	Subject        string             `gorm:"type:varchar(500)"`
	Body           string
	Status         models.EmailStatus `gorm:"type:varchar(50);index:idx_email_status"`
	Attempts       int
	LastError      string
	SentAt         *time.Time
}
