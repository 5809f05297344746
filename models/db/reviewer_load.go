package dbmodels

import "time"

// ReviewerLoad - поддерживаемый счетчик активных номинаций ревьюера в цикле.
// Обновляется в одной транзакции с номинацией под блокировкой строки,
// не выводится запросом на лету.
type ReviewerLoad struct {
	BaseModel
	CycleID     string `gorm:"type:varchar(36);uniqueIndex:idx_reviewer_load"`
	ReviewerID  string `gorm:"type:varchar(36);uniqueIndex:idx_reviewer_load"`
	Count       int
	LastUpdated time.Time
}
