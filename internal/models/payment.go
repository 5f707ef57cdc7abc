package models

import "time"

// Payment settles one service-package record. PaymentDate is set by the
// server at creation time.
type Payment struct {
	PaymentNumber uint      `json:"PaymentNumber" gorm:"primaryKey;autoIncrement"`
	RecordNumber  uint      `json:"RecordNumber" gorm:"index"`
	AmountPaid    float64   `json:"AmountPaid"`
	PaymentDate   time.Time `json:"PaymentDate" gorm:"autoCreateTime"`
}

func (Payment) TableName() string { return "Payment" }
