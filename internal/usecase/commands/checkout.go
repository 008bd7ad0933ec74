package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
	"linkpay/internal/infra"
	"linkpay/internal/infra/gateway"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/pkg/errs"
)

const checkoutItemTitle = "Premium short link"

type CheckoutInput struct {
	OriginalURL string
	CustomAlias *string
	ExpiryDate  *time.Time
	Quantity    int
}

type CheckoutResult struct {
	PreferenceID string
	SessionID    uuid.UUID
	InitPoint    string
}

// CheckoutUsecase opens a payment session: it reserves nothing durable on the
// urls side, creates the gateway preference, and persists the pending payment
// that the fulfillment pipeline later converges on.
type CheckoutUsecase struct {
	pendingRepo PendingPaymentRepository
	urlRepo     UrlRepository
	legacyRepo  LegacyPaymentRepository
	gw          PaymentGateway
	cfg         config.ShortlinkConfig
	clock       clock.Clock
	logger      *slog.Logger
}

func NewCheckoutUsecase(
	pendingRepo PendingPaymentRepository,
	urlRepo UrlRepository,
	legacyRepo LegacyPaymentRepository,
	gw PaymentGateway,
	cfg config.ShortlinkConfig,
	clk clock.Clock,
	logger *slog.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		pendingRepo: pendingRepo,
		urlRepo:     urlRepo,
		legacyRepo:  legacyRepo,
		gw:          gw,
		cfg:         cfg,
		clock:       clk,
		logger:      logger,
	}
}

func (u *CheckoutUsecase) Execute(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	pending, err := payment.NewPendingPayment(
		input.OriginalURL, input.CustomAlias, input.ExpiryDate,
		quantity, u.cfg.AmountCents, u.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	// Reject malformed aliases here, before money moves; availability is a
	// best-effort check, the unique index on short_code is the real arbiter
	// at fulfillment time.
	if alias := pending.CustomAlias(); alias != nil {
		if !shorturl.IsValidCode(*alias) {
			return nil, shorturl.ErrInvalidShortCode
		}
		if err := u.checkAliasAvailable(ctx, *alias); err != nil {
			return nil, err
		}
	}

	pref, err := u.gw.CreatePreference(ctx, u.buildPreferenceRequest(pending, quantity))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout preference")
	}
	pending.AttachPreference(pref.ID)

	if err := u.pendingRepo.Create(ctx, pending); err != nil {
		return nil, errs.Wrap(err, "failed to persist pending payment")
	}

	// The legacy payments row never gates fulfillment; losing it is a warning,
	// not a checkout failure.
	legacy := payment.NewLegacyRecord("", pref.ID, quantity, u.clock.Now())
	if err := u.legacyRepo.RecordCheckout(ctx, legacy); err != nil {
		u.logger.Warn("failed to record legacy checkout row",
			"preference_id", pref.ID, "error", err)
	}

	return &CheckoutResult{
		PreferenceID: pref.ID,
		SessionID:    pending.SessionID(),
		InitPoint:    pref.InitPoint,
	}, nil
}

func (u *CheckoutUsecase) checkAliasAvailable(ctx context.Context, alias string) error {
	_, err := u.urlRepo.FindByShortCode(ctx, alias)
	if err == nil {
		return errs.ErrAliasTaken
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return errs.Wrap(err, "failed to check alias availability")
}

func (u *CheckoutUsecase) buildPreferenceRequest(pending *payment.PendingPayment, quantity int) gateway.PreferenceRequest {
	base := strings.TrimRight(u.cfg.BaseURL, "/")
	sessionID := pending.SessionID().String()

	// The gateway redirects the browser to these URLs verbatim, so each one
	// must already carry the session id for the callback handlers to resolve.
	session := "?session_id=" + sessionID

	return gateway.PreferenceRequest{
		Items: []gateway.PreferenceItem{{
			Title:      checkoutItemTitle,
			Quantity:   quantity,
			CurrencyID: u.cfg.CurrencyID,
			UnitPrice:  float64(u.cfg.AmountCents) / 100,
		}},
		BackURLs: gateway.BackURLs{
			Success: base + "/success" + session,
			Pending: base + "/pending" + session,
			Failure: base + "/failure" + session,
		},
		AutoReturn:        "approved",
		ExternalReference: sessionID,
		NotificationURL:   base + "/webhook",
	}
}
