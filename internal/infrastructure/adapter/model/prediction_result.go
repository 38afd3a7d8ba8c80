package model

import (
	"time"
)

// PredictionResult represents the database model for stored prediction results
type PredictionResult struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	JobID       string    `gorm:"uniqueIndex;not null;size:255"`
	UserID      uint64    `gorm:"not null;index"`
	Labels      string    `gorm:"type:text;not null"` // JSON-encoded label list
	CostInCents int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for PredictionResult
func (PredictionResult) TableName() string {
	return "prediction_results"
}
