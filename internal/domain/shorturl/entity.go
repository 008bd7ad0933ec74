package shorturl

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidShortCode = errors.New("short code must be 1-32 url-safe characters")
	ErrMissingQRCode    = errors.New("qr code data url is required")
)

// Url is the premium resource created exactly once per completed purchase.
// After creation it is owned by the redirect-serving subsystem; the
// fulfillment pipeline only ever writes it.
type Url struct {
	id            uuid.UUID
	shortCode     string
	originalURL   string
	customAlias   *string
	expiryDate    *time.Time
	qrCodeDataURL string
	accessNumber  int
	createdAt     time.Time
}

func NewUrl(
	shortCode string,
	originalURL string,
	customAlias *string,
	expiryDate *time.Time,
	qrCodeDataURL string,
	now time.Time,
) (*Url, error) {
	if !IsValidCode(shortCode) {
		return nil, ErrInvalidShortCode
	}
	if qrCodeDataURL == "" {
		return nil, ErrMissingQRCode
	}

	return &Url{
		id:            uuid.New(),
		shortCode:     shortCode,
		originalURL:   originalURL,
		customAlias:   customAlias,
		expiryDate:    expiryDate,
		qrCodeDataURL: qrCodeDataURL,
		accessNumber:  0,
		createdAt:     now,
	}, nil
}

func ReconstructUrl(
	id uuid.UUID,
	shortCode string,
	originalURL string,
	customAlias *string,
	expiryDate *time.Time,
	qrCodeDataURL string,
	accessNumber int,
	createdAt time.Time,
) *Url {
	return &Url{
		id:            id,
		shortCode:     shortCode,
		originalURL:   originalURL,
		customAlias:   customAlias,
		expiryDate:    expiryDate,
		qrCodeDataURL: qrCodeDataURL,
		accessNumber:  accessNumber,
		createdAt:     createdAt,
	}
}

func (u *Url) HasExpired(now time.Time) bool {
	return u.expiryDate != nil && now.After(*u.expiryDate)
}

func (u *Url) ID() uuid.UUID          { return u.id }
func (u *Url) ShortCode() string      { return u.shortCode }
func (u *Url) OriginalURL() string    { return u.originalURL }
func (u *Url) CustomAlias() *string   { return u.customAlias }
func (u *Url) ExpiryDate() *time.Time { return u.expiryDate }
func (u *Url) QRCodeDataURL() string  { return u.qrCodeDataURL }
func (u *Url) AccessNumber() int      { return u.accessNumber }
func (u *Url) CreatedAt() time.Time   { return u.createdAt }
