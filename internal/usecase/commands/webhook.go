package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"linkpay/internal/infra/gateway"
	"linkpay/internal/pkg/errs"
)

// WebhookUsecase processes an authenticated, normalized gateway notification.
// Signature verification and payload normalization happen in the transport
// layer; this command owns dedup, state fetch, the legacy mirror write, and
// handing approved payments to the fulfillment command.
type WebhookUsecase struct {
	guard       IdempotencyGuard
	gw          PaymentGateway
	legacyRepo  LegacyPaymentRepository
	fulfillment *FulfillmentUsecase
	logger      *slog.Logger
}

func NewWebhookUsecase(
	guard IdempotencyGuard,
	gw PaymentGateway,
	legacyRepo LegacyPaymentRepository,
	fulfillment *FulfillmentUsecase,
	logger *slog.Logger,
) *WebhookUsecase {
	return &WebhookUsecase{
		guard:       guard,
		gw:          gw,
		legacyRepo:  legacyRepo,
		fulfillment: fulfillment,
		logger:      logger,
	}
}

// Execute returns replayed=true when the delivery was a duplicate that
// performed no work, and an error only when the notification could not be
// processed and a gateway retry might succeed. The handler acknowledges with
// 200 either way; the error feeds logging, not the response status.
func (u *WebhookUsecase) Execute(ctx context.Context, n *gateway.Notification) (replayed bool, err error) {
	switch n.Kind {
	case gateway.KindPayment:
		return u.processPayment(ctx, n.ResourceID)
	case gateway.KindMerchantOrder:
		return false, u.processMerchantOrder(ctx, n.ResourceID)
	default:
		u.logger.Info("ignoring notification of unhandled kind", "resource_id", n.ResourceID)
		return false, nil
	}
}

func (u *WebhookUsecase) processPayment(ctx context.Context, paymentID string) (bool, error) {
	acquired, err := u.guard.Acquire(ctx, paymentID)
	if err != nil {
		// The guard is best effort; the durable claim still prevents double
		// fulfillment when the cache is down.
		u.logger.Warn("webhook dedup guard unavailable, proceeding", "payment_id", paymentID, "error", err)
		acquired = true
	}
	if !acquired {
		u.logger.Info("duplicate webhook delivery suppressed", "payment_id", paymentID)
		return true, nil
	}

	p, err := u.gw.GetPayment(ctx, paymentID)
	if err != nil {
		u.releaseGuard(ctx, paymentID)
		return false, errs.Wrap(err, "failed to fetch payment")
	}

	u.mirrorLegacy(ctx, p)

	if !p.IsApproved() {
		// A later status-change notification for this payment must not be
		// suppressed by the dedup key.
		u.logger.Info("payment not approved yet", "payment_id", paymentID, "status", p.Status)
		u.releaseGuard(ctx, paymentID)
		return false, nil
	}

	return u.fulfillFromReference(ctx, paymentID, p.ExternalReference)
}

// processMerchantOrder handles the order-level notification variant. Dedup is
// left to the durable claim here; order notifications are rare and idempotent.
func (u *WebhookUsecase) processMerchantOrder(ctx context.Context, orderID string) error {
	order, err := u.gw.GetMerchantOrder(ctx, orderID)
	if err != nil {
		return errs.Wrap(err, "failed to fetch merchant order")
	}

	for _, op := range order.Payments {
		if op.Status != "approved" {
			continue
		}
		_, err := u.fulfillFromReference(ctx, strconv.FormatInt(op.ID, 10), order.ExternalReference)
		return err
	}

	u.logger.Info("merchant order carries no approved payment", "order_id", orderID)
	return nil
}

func (u *WebhookUsecase) fulfillFromReference(ctx context.Context, paymentID, externalReference string) (bool, error) {
	sessionID, err := uuid.Parse(externalReference)
	if err != nil {
		// Payments created outside the session flow have no fulfillable
		// reference; the legacy mirror above is all we owe them.
		u.logger.Warn("payment carries no session reference",
			"payment_id", paymentID, "external_reference", externalReference)
		return false, nil
	}

	_, err = u.fulfillment.Execute(ctx, sessionID)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, errs.ErrAlreadyProcessed):
		u.logger.Info("fulfillment already handled elsewhere",
			"payment_id", paymentID, "session_id", sessionID)
		return true, nil
	case errors.Is(err, errs.ErrSessionNotFound):
		u.logger.Warn("webhook references an unknown session",
			"payment_id", paymentID, "session_id", sessionID)
		return false, nil
	default:
		u.releaseGuard(ctx, paymentID)
		return false, errs.Wrap(err, "fulfillment failed for webhook delivery")
	}
}

func (u *WebhookUsecase) mirrorLegacy(ctx context.Context, p *gateway.Payment) {
	var merchantOrderID *string
	if p.Order.ID != 0 {
		id := strconv.FormatInt(p.Order.ID, 10)
		merchantOrderID = &id
	}
	paymentID := strconv.FormatInt(p.ID, 10)
	if err := u.legacyRepo.UpsertFromNotification(ctx, paymentID, p.Status, merchantOrderID); err != nil {
		u.logger.Warn("failed to mirror payment into legacy table", "payment_id", paymentID, "error", err)
	}
}

func (u *WebhookUsecase) releaseGuard(ctx context.Context, paymentID string) {
	if err := u.guard.Release(ctx, paymentID); err != nil {
		u.logger.Warn("failed to release webhook dedup key", "payment_id", paymentID, "error", err)
	}
}
