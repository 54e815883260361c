package entities

import "time"

// HealthCheck is a connectivity marker written by the db-check endpoint.
type HealthCheck struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (HealthCheck) TableName() string { return "health_checks" }
