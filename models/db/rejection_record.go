package dbmodels

// RejectionRecord - отклоненная пара (запросивший, ревьюер).
// Запись блокирует повторное выдвижение пары в том же цикле. Только добавление.
type RejectionRecord struct {
	BaseModel
	CycleID     string `gorm:"type:varchar(36);uniqueIndex:idx_rejection_pair"`
	RequesterID string `gorm:"type:varchar(36);uniqueIndex:idx_rejection_pair"`
	ReviewerID  string `gorm:"type:varchar(36);uniqueIndex:idx_rejection_pair"`
	RejectedBy  string `gorm:"type:varchar(36)"`
	Reason      string
}
