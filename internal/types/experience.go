package types

import (
	"time"
)

// IndustryExperience is one industry position. Persisted rows are the
// delete surface; the static dataset keeps its own independently keyed copy.
type IndustryExperience struct {
	ID        string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Company   string    `gorm:"not null;column:company" json:"company"`
	Role      string    `gorm:"not null;column:role" json:"role"`
	StartDate string    `gorm:"column:start_date" json:"start_date"`
	EndDate   string    `gorm:"column:end_date" json:"end_date"`
	Summary   string    `gorm:"type:text;column:summary" json:"summary"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (IndustryExperience) TableName() string {
	return "industry_experience"
}
