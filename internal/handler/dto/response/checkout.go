package response

import (
	"github.com/google/uuid"

	"linkpay/internal/usecase/commands"
)

type CheckoutResponse struct {
	ID        string    `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	InitPoint string    `json:"initPoint,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		ID:        r.PreferenceID,
		SessionID: r.SessionID,
		InitPoint: r.InitPoint,
	}
}
