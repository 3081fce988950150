package types

import (
	"time"
)

type Education struct {
	ID          string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Institution string    `gorm:"not null;column:institution" json:"institution"`
	Degree      string    `gorm:"not null;column:degree" json:"degree"`
	Field       string    `gorm:"column:field" json:"field"`
	StartYear   string    `gorm:"column:start_year" json:"start_year"`
	EndYear     string    `gorm:"column:end_year" json:"end_year"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Education) TableName() string {
	return "education"
}
