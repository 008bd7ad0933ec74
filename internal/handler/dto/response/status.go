package response

import (
	"github.com/google/uuid"

	"linkpay/internal/usecase/queries"
)

type CheckoutStatusResponse struct {
	SessionID     uuid.UUID `json:"sessionId"`
	Status        string    `json:"status"`
	ShortURL      *string   `json:"shortUrl,omitempty"`
	QRCodeDataURL *string   `json:"qrCodeDataUrl,omitempty"`
}

func FromCheckoutStatusView(sessionID uuid.UUID, v *queries.CheckoutStatusView) *CheckoutStatusResponse {
	return &CheckoutStatusResponse{
		SessionID:     sessionID,
		Status:        v.Status,
		ShortURL:      v.ShortURL,
		QRCodeDataURL: v.QRCodeDataURL,
	}
}
