package queries

import (
	"context"
	"time"

	"linkpay/internal/infra"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/errs"
)

type LinkInfoView struct {
	ShortCode     string
	OriginalURL   string
	QRCodeDataURL string
	ExpiryDate    *time.Time
	AccessNumber  int
	CreatedAt     time.Time
	Expired       bool
}

type LinkInfoQuery struct {
	urlReader UrlReader
	clock     clock.Clock
}

func NewLinkInfoQuery(urlReader UrlReader, clk clock.Clock) *LinkInfoQuery {
	return &LinkInfoQuery{urlReader: urlReader, clock: clk}
}

func (q *LinkInfoQuery) Execute(ctx context.Context, shortCode string) (*LinkInfoView, error) {
	u, err := q.urlReader.FindByShortCode(ctx, shortCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrURLNotFound
		}
		return nil, errs.Wrap(err, "failed to load url")
	}

	return &LinkInfoView{
		ShortCode:     u.ShortCode(),
		OriginalURL:   u.OriginalURL(),
		QRCodeDataURL: u.QRCodeDataURL(),
		ExpiryDate:    u.ExpiryDate(),
		AccessNumber:  u.AccessNumber(),
		CreatedAt:     u.CreatedAt(),
		Expired:       u.HasExpired(q.clock.Now()),
	}, nil
}
