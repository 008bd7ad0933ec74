package payment

import (
	"time"

	"github.com/google/uuid"
)

// LegacyRecord mirrors the pre-session payment row kept for backward
// compatibility. It is written from webhook notifications and never consulted
// for fulfillment decisions.
type LegacyRecord struct {
	ID              uuid.UUID
	PaymentID       string
	PreferenceID    string
	Status          *string
	MerchantOrderID *string
	Quantity        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewLegacyRecord(paymentID, preferenceID string, quantity int, now time.Time) *LegacyRecord {
	return &LegacyRecord{
		ID:           uuid.New(),
		PaymentID:    paymentID,
		PreferenceID: preferenceID,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
