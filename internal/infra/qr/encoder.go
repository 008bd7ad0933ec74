package qr

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"

	"linkpay/internal/pkg/errs"
)

const imageSize = 256

// Encoder renders short links as PNG QR codes packaged as data URLs, ready to
// embed in an <img> tag without extra round trips.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) DataURL(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, imageSize)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode qr code")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
