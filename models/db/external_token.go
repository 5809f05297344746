package dbmodels

import "time"

// ExternalToken - учет выданных токенов доступа внешних ревьюеров.
// Первое предъявление валидного токена считается согласием на участие.
type ExternalToken struct {
	BaseModel
	NominationID string `gorm:"type:varchar(36);index"`
	TokenID      string `gorm:"type:varchar(36);uniqueIndex"`
	ExpiresAt    time.Time
	FirstUsedAt  *time.Time
	RevokedAt    *time.Time
}
