package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	TransactionID string    `gorm:"uniqueIndex;not null;size:255"`
	Type          string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	ResultBalance string    `gorm:"size:50"`
	CreatedAt     time.Time `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
