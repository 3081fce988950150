package types

import (
	"time"
)

type Publication struct {
	ID        string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Venue     string    `gorm:"column:venue" json:"venue"`
	Year      string    `gorm:"column:year" json:"year"`
	Authors   string    `gorm:"column:authors" json:"authors"`
	URL       string    `gorm:"column:url" json:"url"`
	Abstract  string    `gorm:"type:text;column:abstract" json:"abstract"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Publication) TableName() string {
	return "publication"
}
