package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// PaymentReceipt records the outcome of a simulated payment.
type PaymentReceipt struct {
	ReceiptID string          `json:"receiptId"`
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
}
