package payment

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOriginalURL = errors.New("original url must be an absolute http(s) url")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidTransition  = errors.New("invalid pending payment status transition")
	ErrExpiryInPast       = errors.New("expiry date must be in the future")
)

// PendingPayment is the durable intent-to-fulfill record. The session id is
// generated locally and echoed back by the gateway as external_reference, so
// every entry channel can correlate its event to this record.
type PendingPayment struct {
	sessionID    uuid.UUID
	preferenceID string
	originalURL  string
	customAlias  *string
	expiryDate   *time.Time
	quantity     int
	amountCents  int64
	status       Status
	shortURL     *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPendingPayment(
	originalURL string,
	customAlias *string,
	expiryDate *time.Time,
	quantity int,
	amountCents int64,
	now time.Time,
) (*PendingPayment, error) {
	if err := validateOriginalURL(originalURL); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if expiryDate != nil && !expiryDate.After(now) {
		return nil, ErrExpiryInPast
	}

	alias := normalizeAlias(customAlias)

	return &PendingPayment{
		sessionID:   uuid.New(),
		originalURL: originalURL,
		customAlias: alias,
		expiryDate:  expiryDate,
		quantity:    quantity,
		amountCents: amountCents,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPendingPayment(
	sessionID uuid.UUID,
	preferenceID string,
	originalURL string,
	customAlias *string,
	expiryDate *time.Time,
	quantity int,
	amountCents int64,
	status Status,
	shortURL *string,
	createdAt, updatedAt time.Time,
) *PendingPayment {
	return &PendingPayment{
		sessionID:    sessionID,
		preferenceID: preferenceID,
		originalURL:  originalURL,
		customAlias:  customAlias,
		expiryDate:   expiryDate,
		quantity:     quantity,
		amountCents:  amountCents,
		status:       status,
		shortURL:     shortURL,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// AttachPreference records the gateway checkout session id once the
// preference has been created.
func (p *PendingPayment) AttachPreference(preferenceID string) {
	p.preferenceID = preferenceID
}

// Transition validates the monotonic state machine. The durable
// compare-and-swap in the store is the concurrency guard; this keeps a loaded
// entity honest in memory.
func (p *PendingPayment) Transition(next Status) error {
	if !p.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.status = next
	return nil
}

func (p *PendingPayment) Complete(shortURL string) error {
	if err := p.Transition(StatusCompleted); err != nil {
		return err
	}
	p.shortURL = &shortURL
	return nil
}

func (p *PendingPayment) IsPending() bool   { return p.status == StatusPending }
func (p *PendingPayment) IsCompleted() bool { return p.status == StatusCompleted }

func (p *PendingPayment) SessionID() uuid.UUID    { return p.sessionID }
func (p *PendingPayment) PreferenceID() string    { return p.preferenceID }
func (p *PendingPayment) OriginalURL() string     { return p.originalURL }
func (p *PendingPayment) CustomAlias() *string    { return p.customAlias }
func (p *PendingPayment) ExpiryDate() *time.Time  { return p.expiryDate }
func (p *PendingPayment) Quantity() int           { return p.quantity }
func (p *PendingPayment) AmountCents() int64      { return p.amountCents }
func (p *PendingPayment) Status() Status          { return p.status }
func (p *PendingPayment) ShortURL() *string       { return p.shortURL }
func (p *PendingPayment) CreatedAt() time.Time    { return p.createdAt }
func (p *PendingPayment) UpdatedAt() time.Time    { return p.updatedAt }

func validateOriginalURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidOriginalURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidOriginalURL
	}
	return nil
}

func normalizeAlias(alias *string) *string {
	if alias == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*alias)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
