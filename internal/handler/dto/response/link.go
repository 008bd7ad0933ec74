package response

import (
	"time"

	"github.com/jinzhu/copier"

	"linkpay/internal/usecase/queries"
)

type LinkInfoResponse struct {
	ShortCode     string     `json:"shortCode"`
	OriginalURL   string     `json:"originalUrl"`
	QRCodeDataURL string     `json:"qrCodeDataUrl"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	AccessNumber  int        `json:"accessNumber"`
	CreatedAt     time.Time  `json:"createdAt"`
	Expired       bool       `json:"expired"`
}

func FromLinkInfoView(v *queries.LinkInfoView) (*LinkInfoResponse, error) {
	var resp LinkInfoResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
