package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	City      string    `json:"city"`
	Goals     []string  `gorm:"serializer:json" json:"goals"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Business) TableName() string { return "businesses" }

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BusinessSummary is the projection returned by the business listing.
type BusinessSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}
