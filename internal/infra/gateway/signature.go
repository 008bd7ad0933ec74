package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/pkg/errs"
)

// millisecond timestamps start around 1e12; anything above is converted down
const millisThreshold = 1_000_000_000_000

// SignatureVerifier authenticates webhook deliveries against the shared
// secret. The gateway signs a manifest containing the notified resource id
// and the header timestamp; the newer protocol variant also includes the
// x-request-id header.
type SignatureVerifier struct {
	secret string
	window time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewSignatureVerifier(cfg config.GatewayConfig, clk clock.Clock, logger *slog.Logger) *SignatureVerifier {
	return &SignatureVerifier{
		secret: cfg.WebhookSecret,
		window: cfg.TimestampWindow,
		clock:  clk,
		logger: logger,
	}
}

// Verify returns nil when the signature is authentic, errs.ErrInvalidSignature
// otherwise. Staleness alone never rejects: the gateway retries deliveries
// with the original ts, so duplicate suppression belongs to the idempotency
// guard, not here.
func (v *SignatureVerifier) Verify(signatureHeader, dataID, requestID string) error {
	if v.secret == "" {
		// Open mode. Loud on purpose: an unsigned webhook endpoint is a
		// degraded security posture, not a success.
		v.logger.Warn("webhook secret not configured, skipping signature verification")
		return nil
	}

	ts, received, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidSignature)
	}

	v.checkTimestamp(ts, dataID)

	for _, manifest := range signingManifests(dataID, requestID, ts) {
		if hmac.Equal([]byte(v.sign(manifest)), []byte(received)) {
			return nil
		}
	}

	v.logger.Error("webhook signature mismatch", "data_id", dataID, "request_id", requestID)
	return errs.ErrInvalidSignature
}

// parseSignatureHeader splits "ts=<unix>,v1=<hex>" tolerating extra fields
// and whitespace.
func parseSignatureHeader(header string) (ts string, v1 string, err error) {
	if !strings.Contains(header, "ts=") || !strings.Contains(header, "v1=") {
		return "", "", errs.New("malformed x-signature header")
	}

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}

	if ts == "" || v1 == "" {
		return "", "", errs.New("x-signature header missing ts or v1")
	}
	return ts, v1, nil
}

// signingManifests returns the candidate strings the gateway may have signed:
// the current template with the lowercased resource id (and request id when
// present), and the legacy plain concatenation.
func signingManifests(dataID, requestID, ts string) []string {
	id := strings.ToLower(dataID)

	current := "id:" + id + ";"
	if requestID != "" {
		current += "request-id:" + requestID + ";"
	}
	current += "ts:" + ts + ";"

	legacy := dataID + ts

	return []string{current, legacy}
}

func (v *SignatureVerifier) sign(manifest string) string {
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *SignatureVerifier) checkTimestamp(ts, dataID string) {
	raw, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		v.logger.Warn("webhook signature has non-numeric timestamp", "ts", ts, "data_id", dataID)
		return
	}
	if raw > millisThreshold {
		raw /= 1000
	}

	drift := v.clock.Now().Unix() - raw
	if drift < 0 {
		drift = -drift
	}
	if time.Duration(drift)*time.Second > v.window {
		v.logger.Warn("webhook timestamp outside freshness window",
			"data_id", dataID, "drift_seconds", drift, "window", v.window)
	}
}
