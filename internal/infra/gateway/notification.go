package gateway

import (
	"encoding/json"
	"strconv"
	"strings"

	"linkpay/internal/pkg/errs"
)

type NotificationKind string

const (
	KindPayment       NotificationKind = "payment"
	KindMerchantOrder NotificationKind = "merchant_order"
	KindUnknown       NotificationKind = "unknown"
)

// Notification is the canonical form of a webhook delivery. The gateway has
// shipped several envelope shapes over time (type vs topic, data.id vs
// resource vs id, body vs query params); everything is normalized here before
// entering the pipeline.
type Notification struct {
	Kind       NotificationKind
	ResourceID string
}

type notificationEnvelope struct {
	Type     string `json:"type"`
	Topic    string `json:"topic"`
	Action   string `json:"action"`
	ID       any    `json:"id"`
	Resource string `json:"resource"`
	Data     struct {
		ID any `json:"id"`
	} `json:"data"`
}

// ParseNotification normalizes a webhook body plus the legacy query-param
// variant (?topic=payment&id=...) into one Notification.
func ParseNotification(body []byte, queryTopic, queryID string) (*Notification, error) {
	var env notificationEnvelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, errs.Wrap(err, "malformed notification body")
		}
	}

	kind := normalizeKind(firstNonEmpty(env.Type, env.Topic, queryTopic))

	resourceID := asString(env.Data.ID)
	if resourceID == "" {
		resourceID = resourceTail(env.Resource)
	}
	if resourceID == "" {
		resourceID = asString(env.ID)
	}
	if resourceID == "" {
		resourceID = queryID
	}

	if resourceID == "" {
		return nil, errs.New("notification carries no resource id")
	}

	return &Notification{Kind: kind, ResourceID: resourceID}, nil
}

func normalizeKind(raw string) NotificationKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "payment":
		return KindPayment
	case "merchant_order", "topic_merchant_order_wh":
		return KindMerchantOrder
	default:
		return KindUnknown
	}
}

// resourceTail extracts the id from resource URLs like
// "https://api.../merchant_orders/123".
func resourceTail(resource string) string {
	resource = strings.TrimRight(strings.TrimSpace(resource), "/")
	if resource == "" {
		return ""
	}
	if idx := strings.LastIndex(resource, "/"); idx >= 0 {
		return resource[idx+1:]
	}
	return resource
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; resource ids are integral
		return strconv.FormatInt(int64(val), 10)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
