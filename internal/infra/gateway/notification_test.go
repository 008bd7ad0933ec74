//go:build unit

package gateway_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpay/internal/infra/gateway"
)

func TestParseNotification(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		queryTopic string
		queryID    string
		wantKind   gateway.NotificationKind
		wantID     string
		wantErr    bool
	}{
		{
			name:     "current payment shape with data.id",
			body:     `{"type":"payment","data":{"id":"12345"}}`,
			wantKind: gateway.KindPayment,
			wantID:   "12345",
		},
		{
			name:     "numeric data.id",
			body:     `{"type":"payment","data":{"id":12345}}`,
			wantKind: gateway.KindPayment,
			wantID:   "12345",
		},
		{
			name:     "legacy topic with resource url",
			body:     `{"topic":"merchant_order","resource":"https://api.mercadolibre.com/merchant_orders/4444"}`,
			wantKind: gateway.KindMerchantOrder,
			wantID:   "4444",
		},
		{
			name:     "topic with bare resource id",
			body:     `{"topic":"payment","resource":"12345"}`,
			wantKind: gateway.KindPayment,
			wantID:   "12345",
		},
		{
			name:     "top-level id fallback",
			body:     `{"type":"payment","id":987}`,
			wantKind: gateway.KindPayment,
			wantID:   "987",
		},
		{
			name:       "query params only",
			body:       "",
			queryTopic: "payment",
			queryID:    "777",
			wantKind:   gateway.KindPayment,
			wantID:     "777",
		},
		{
			name:       "body kind wins over query topic",
			body:       `{"type":"payment","data":{"id":"1"}}`,
			queryTopic: "merchant_order",
			wantKind:   gateway.KindPayment,
			wantID:     "1",
		},
		{
			name:     "unknown kind still carries resource id",
			body:     `{"type":"plan","data":{"id":"55"}}`,
			wantKind: gateway.KindUnknown,
			wantID:   "55",
		},
		{
			name:    "no resource id anywhere",
			body:    `{"type":"payment"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"type":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := gateway.ParseNotification([]byte(tt.body), tt.queryTopic, tt.queryID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want := &gateway.Notification{Kind: tt.wantKind, ResourceID: tt.wantID}
			if diff := cmp.Diff(want, n); diff != "" {
				t.Errorf("ParseNotification() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
