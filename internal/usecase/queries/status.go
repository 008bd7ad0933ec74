package queries

import (
	"context"

	"github.com/google/uuid"

	"linkpay/internal/infra"
	"linkpay/internal/pkg/errs"
)

type CheckoutStatusView struct {
	Status        string
	ShortURL      *string
	QRCodeDataURL *string
}

// CheckoutStatusQuery reports the current state of a payment session. It is
// strictly read-only; fulfillment happens on the webhook and browser-return
// channels.
type CheckoutStatusQuery struct {
	pendingReader PendingPaymentReader
	encoder       QRCodeEncoder
}

func NewCheckoutStatusQuery(pendingReader PendingPaymentReader, encoder QRCodeEncoder) *CheckoutStatusQuery {
	return &CheckoutStatusQuery{pendingReader: pendingReader, encoder: encoder}
}

func (q *CheckoutStatusQuery) Execute(ctx context.Context, sessionID uuid.UUID) (*CheckoutStatusView, error) {
	pending, err := q.pendingReader.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to load pending payment")
	}

	view := &CheckoutStatusView{Status: pending.Status().String()}

	if pending.IsCompleted() && pending.ShortURL() != nil {
		shortURL := *pending.ShortURL()
		qr, err := q.encoder.DataURL(shortURL)
		if err != nil {
			return nil, errs.Wrap(err, "failed to render qr code")
		}
		view.ShortURL = &shortURL
		view.QRCodeDataURL = &qr
	}

	return view, nil
}
