package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"linkpay/internal/infra"
	"linkpay/internal/pkg/errs"
)

type SuccessReturnResult struct {
	Status   string
	ShortURL *string
}

// SuccessReturnUsecase is the browser entry channel. The gateway never
// retries a redirect, so there is no dedup guard here: the handler fetches
// the payment state directly and races the webhook through the shared
// fulfillment command.
type SuccessReturnUsecase struct {
	pendingRepo PendingPaymentRepository
	gw          PaymentGateway
	fulfillment *FulfillmentUsecase
	logger      *slog.Logger
}

func NewSuccessReturnUsecase(
	pendingRepo PendingPaymentRepository,
	gw PaymentGateway,
	fulfillment *FulfillmentUsecase,
	logger *slog.Logger,
) *SuccessReturnUsecase {
	return &SuccessReturnUsecase{
		pendingRepo: pendingRepo,
		gw:          gw,
		fulfillment: fulfillment,
		logger:      logger,
	}
}

// Execute fulfills the session when the gateway confirms approval, then
// reports the state the browser should be shown. paymentID may be empty; the
// gateway does not always include it in the redirect.
func (u *SuccessReturnUsecase) Execute(ctx context.Context, sessionID uuid.UUID, paymentID string) (*SuccessReturnResult, error) {
	pending, err := u.pendingRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to load pending payment")
	}

	if pending.IsPending() && u.paymentApproved(ctx, sessionID, paymentID) {
		result, err := u.fulfillment.Execute(ctx, sessionID)
		switch {
		case err == nil:
			return &SuccessReturnResult{Status: "completed", ShortURL: &result.ShortURL}, nil
		case errors.Is(err, errs.ErrAlreadyProcessed):
			// Lost the race; fall through and report whatever state won.
		default:
			u.logger.Error("fulfillment failed on success return",
				"session_id", sessionID, "error", err)
		}
	}

	current, err := u.pendingRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to reload pending payment")
	}
	res := &SuccessReturnResult{Status: current.Status().String()}
	if current.IsCompleted() {
		res.ShortURL = current.ShortURL()
	}
	return res, nil
}

// paymentApproved confirms approval with the gateway, by payment id when the
// redirect carried one, otherwise by searching on the session reference.
// Gateway trouble degrades to "not confirmed"; the webhook channel will catch
// up.
func (u *SuccessReturnUsecase) paymentApproved(ctx context.Context, sessionID uuid.UUID, paymentID string) bool {
	if paymentID != "" {
		p, err := u.gw.GetPayment(ctx, paymentID)
		if err != nil {
			u.logger.Warn("payment fetch failed on success return",
				"session_id", sessionID, "payment_id", paymentID, "error", err)
			return false
		}
		return p.IsApproved()
	}

	payments, err := u.gw.SearchPaymentsByReference(ctx, sessionID.String())
	if err != nil {
		u.logger.Warn("payment search failed on success return",
			"session_id", sessionID, "error", err)
		return false
	}
	for i := range payments {
		if payments[i].IsApproved() {
			return true
		}
	}
	return false
}
