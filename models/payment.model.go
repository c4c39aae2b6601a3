package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records a completed purchase. Rows are immutable and never deleted;
// class enrollment counters are derived from them during reconciliation.
type Payment struct {
	gorm.Model
	Email         string    `json:"email" gorm:"index;not null"`
	TransactionID string    `json:"transactionId"`
	Price         float64   `json:"price"`
	Date          time.Time `json:"date"`
	CartID        uint      `json:"cartId" gorm:"uniqueIndex"`
	ClassID       uint      `json:"classId" gorm:"index;not null"`
	ClassName     string    `json:"className"`
	ReceiptID     string    `json:"receiptId" gorm:"uniqueIndex"`
}
