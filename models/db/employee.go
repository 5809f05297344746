package dbmodels

import (
	"fmt"
	"time"

	"feedback360-backend/models"
)

type Employee struct {
	BaseModel
	Email           string `gorm:"type:varchar(255);uniqueIndex"`
	FirstName       string `gorm:"type:varchar(150)"`
	LastName        string `gorm:"type:varchar(150)"`
	Team            string `gorm:"type:varchar(255)"`
	Designation     string `gorm:"type:varchar(255)"`
	DesignationRank int
	ManagerID       *string `gorm:"type:varchar(36);index:idx_manager"`
	Manager         *Employee
	JoinDate        *time.Time
	IsExternal      bool
	IsActive        bool
	Role            models.UserRole `gorm:"type:varchar(50)"`
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// Tenure - стаж на указанный момент времени
func (r Employee) Tenure(at time.Time) time.Duration {
	if r.JoinDate == nil {
		return 0
	}
	return at.Sub(*r.JoinDate)
}
