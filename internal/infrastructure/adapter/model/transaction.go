package model

import (
	"time"
)

// Transaction represents the database model for transactions.
// CategoryID is a loose reference; no foreign key is declared.
type Transaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index"`
	Type            string    `gorm:"not null;size:10"`
	CategoryID      uint64    `gorm:"not null"`
	PaymentMethod   string    `gorm:"not null;size:20"`
	Vendor          string    `gorm:"size:255"`
	Amount          int64     `gorm:"not null"`
	Memo            string    `gorm:"type:text"`
	TransactionDate time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
