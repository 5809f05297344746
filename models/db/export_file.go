package dbmodels

// ExportFile - сформированный файл выгрузки, сохраненный в S3
type ExportFile struct {
	BaseModel
	EmployeeID string `gorm:"type:varchar(36);index"`
	CycleID    string `gorm:"type:varchar(36)"`
	FileName   string `gorm:"type:varchar(255)"`
	FileType   string `gorm:"type:varchar(10)"`
	BucketKey  string `gorm:"type:varchar(512)"`
}
