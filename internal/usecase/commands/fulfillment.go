package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
	"linkpay/internal/infra"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/pkg/errs"
)

type FulfillmentResult struct {
	ShortURL      string
	ShortCode     string
	QRCodeDataURL string
	// Replayed marks results served from an already-completed record rather
	// than a fresh fulfillment.
	Replayed bool
}

// FulfillmentUsecase converges the three entry channels (webhook, success
// redirect, status poll) on exactly one fulfillment per session. The
// conditional pending->processing update in the store elects a single winner;
// everyone else observes a terminal state or an in-flight claim.
type FulfillmentUsecase struct {
	pendingRepo PendingPaymentRepository
	urlRepo     UrlRepository
	encoder     QRCodeEncoder
	cfg         config.ShortlinkConfig
	clock       clock.Clock
	logger      *slog.Logger
}

func NewFulfillmentUsecase(
	pendingRepo PendingPaymentRepository,
	urlRepo UrlRepository,
	encoder QRCodeEncoder,
	cfg config.ShortlinkConfig,
	clk clock.Clock,
	logger *slog.Logger,
) *FulfillmentUsecase {
	return &FulfillmentUsecase{
		pendingRepo: pendingRepo,
		urlRepo:     urlRepo,
		encoder:     encoder,
		cfg:         cfg,
		clock:       clk,
		logger:      logger,
	}
}

// Execute fulfills the session if it is still pending. Losing the claim or
// finding the record already claimed yields errs.ErrAlreadyProcessed; a
// completed record replays its stored short url instead of erroring.
func (u *FulfillmentUsecase) Execute(ctx context.Context, sessionID uuid.UUID) (*FulfillmentResult, error) {
	pending, err := u.pendingRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to load pending payment")
	}

	if !pending.IsPending() {
		return u.resolveNonPending(pending)
	}

	claimed, err := u.pendingRepo.ClaimProcessing(ctx, sessionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to claim fulfillment")
	}
	if !claimed {
		// Raced with another channel. Re-read so a fast winner's completed
		// record can still be replayed.
		current, err := u.pendingRepo.FindBySessionID(ctx, sessionID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to reload pending payment after lost claim")
		}
		return u.resolveNonPending(current)
	}

	result, err := u.fulfill(ctx, pending)
	if err != nil {
		if failErr := u.pendingRepo.MarkFailed(ctx, sessionID); failErr != nil {
			u.logger.Error("failed to mark fulfillment as failed",
				"session_id", sessionID, "error", failErr)
		}
		return nil, err
	}
	return result, nil
}

// fulfill runs with the claim held: allocate a code, render the QR code,
// create the url record, then flip the pending payment to completed.
func (u *FulfillmentUsecase) fulfill(ctx context.Context, pending *payment.PendingPayment) (*FulfillmentResult, error) {
	created, err := u.allocateURL(ctx, pending)
	if err != nil {
		return nil, err
	}

	shortURL := u.shortURLFor(created.ShortCode())
	if err := u.pendingRepo.MarkCompleted(ctx, pending.SessionID(), shortURL); err != nil {
		return nil, errs.Wrap(err, "failed to complete pending payment")
	}

	u.logger.Info("fulfillment completed",
		"session_id", pending.SessionID(), "short_code", created.ShortCode())

	return &FulfillmentResult{
		ShortURL:      shortURL,
		ShortCode:     created.ShortCode(),
		QRCodeDataURL: created.QRCodeDataURL(),
	}, nil
}

// allocateURL tries the custom alias first, then random codes. The unique
// index on short_code arbitrates concurrent allocations; DUPLICATE_KEY means
// try again with a fresh code.
func (u *FulfillmentUsecase) allocateURL(ctx context.Context, pending *payment.PendingPayment) (*shorturl.Url, error) {
	attempts := u.cfg.AllocationAttempts
	if attempts < 1 {
		attempts = 1
	}

	useAlias := pending.CustomAlias() != nil

	for attempt := 0; attempt < attempts; attempt++ {
		var code string
		if useAlias && attempt == 0 {
			code = *pending.CustomAlias()
		} else {
			generated, err := shorturl.GenerateCode()
			if err != nil {
				return nil, errs.Wrap(err, "failed to generate short code")
			}
			code = generated
		}

		qr, err := u.encoder.DataURL(u.shortURLFor(code))
		if err != nil {
			return nil, errs.Wrap(err, "failed to render qr code")
		}

		created, err := shorturl.NewUrl(
			code, pending.OriginalURL(), pending.CustomAlias(),
			pending.ExpiryDate(), qr, u.clock.Now(),
		)
		if err != nil {
			return nil, errs.Wrap(err, "failed to build url record")
		}

		if err := u.urlRepo.Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				if useAlias && attempt == 0 {
					u.logger.Warn("custom alias taken at fulfillment, falling back to generated code",
						"session_id", pending.SessionID(), "alias", code)
				}
				continue
			}
			return nil, errs.Wrap(err, "failed to create url record")
		}
		return created, nil
	}

	return nil, errs.ErrShortCodeExhausted
}

// resolveNonPending maps a claimed or terminal record to its caller-visible
// outcome.
func (u *FulfillmentUsecase) resolveNonPending(pending *payment.PendingPayment) (*FulfillmentResult, error) {
	if pending.IsCompleted() && pending.ShortURL() != nil {
		shortURL := *pending.ShortURL()
		code := codeFromShortURL(shortURL)

		// Regenerate rather than re-read the urls row; the QR encoding is
		// deterministic for a given short url.
		qr, err := u.encoder.DataURL(shortURL)
		if err != nil {
			return nil, errs.Wrap(err, "failed to render qr code for replay")
		}

		return &FulfillmentResult{
			ShortURL:      shortURL,
			ShortCode:     code,
			QRCodeDataURL: qr,
			Replayed:      true,
		}, nil
	}

	// processing (claim in flight) and failed both surface as already handled;
	// failed is terminal and never retried.
	return nil, errs.ErrAlreadyProcessed
}

func (u *FulfillmentUsecase) shortURLFor(code string) string {
	return strings.TrimRight(u.cfg.BaseURL, "/") + "/" + code
}

func codeFromShortURL(shortURL string) string {
	if idx := strings.LastIndex(shortURL, "/"); idx >= 0 {
		return shortURL[idx+1:]
	}
	return shortURL
}
