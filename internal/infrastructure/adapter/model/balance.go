package model

import (
	"time"
)

// Balance represents the database model for user balances
type Balance struct {
	UserID        uint64    `gorm:"primaryKey;not null"`
	AmountInCents int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}
