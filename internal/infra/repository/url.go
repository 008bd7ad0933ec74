package repository

import (
	"context"
	"time"

	"linkpay/internal/domain/shorturl"
	"linkpay/internal/infra"

	"github.com/google/uuid"
)

type UrlRepository struct {
	db DBTX
}

func NewUrlRepository(db DBTX) *UrlRepository {
	return &UrlRepository{db: db}
}

// Create relies on the unique index on short_code as the backstop for the
// allocator's check-then-insert race; a concurrent winner surfaces here as
// DUPLICATE_KEY and the allocator retries with a fresh code.
func (r *UrlRepository) Create(ctx context.Context, u *shorturl.Url) error {
	query := `
		INSERT INTO urls (
			id, short_code, original_url, custom_alias, expiry_date,
			qr_code_data_url, access_number, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID(), u.ShortCode(), u.OriginalURL(), u.CustomAlias(), u.ExpiryDate(),
		u.QRCodeDataURL(), u.AccessNumber(), u.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create url", err)
	}
	return nil
}

func (r *UrlRepository) FindByShortCode(ctx context.Context, shortCode string) (*shorturl.Url, error) {
	query := `
		SELECT id, short_code, original_url, custom_alias, expiry_date,
		       qr_code_data_url, access_number, created_at
		FROM urls
		WHERE short_code = $1
	`
	row := r.db.QueryRow(ctx, query, shortCode)

	var (
		id            uuid.UUID
		code          string
		originalURL   string
		customAlias   *string
		expiryDate    *time.Time
		qrCodeDataURL string
		accessNumber  int
		createdAt     time.Time
	)
	err := row.Scan(&id, &code, &originalURL, &customAlias, &expiryDate, &qrCodeDataURL, &accessNumber, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load url", err)
	}

	return shorturl.ReconstructUrl(id, code, originalURL, customAlias, expiryDate, qrCodeDataURL, accessNumber, createdAt), nil
}
