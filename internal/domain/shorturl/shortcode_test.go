//go:build unit

package shorturl_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpay/internal/domain/shorturl"
)

func TestGenerateCode(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := shorturl.GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, shorturl.CodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q in %q", c, code)
		}
		seen[code] = true
	}

	// With 62^6 combinations, 100 draws colliding would point at a broken
	// randomness source.
	assert.Greater(t, len(seen), 95)
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "generated shape", code: "aB3xY9", want: true},
		{name: "single char", code: "a", want: true},
		{name: "alias with dash and underscore", code: "my-cool_link", want: true},
		{name: "max length", code: strings.Repeat("a", 32), want: true},
		{name: "empty", code: "", want: false},
		{name: "too long", code: strings.Repeat("a", 33), want: false},
		{name: "space", code: "my link", want: false},
		{name: "slash", code: "a/b", want: false},
		{name: "unicode", code: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shorturl.IsValidCode(tt.code))
		})
	}
}

func TestUrl_HasExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired, err := shorturl.NewUrl("abc123", "https://example.com", nil, &past, "data:image/png;base64,x", past.Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, expired.HasExpired(now))

	alive, err := shorturl.NewUrl("abc124", "https://example.com", nil, &future, "data:image/png;base64,x", now)
	require.NoError(t, err)
	assert.False(t, alive.HasExpired(now))

	forever, err := shorturl.NewUrl("abc125", "https://example.com", nil, nil, "data:image/png;base64,x", now)
	require.NoError(t, err)
	assert.False(t, forever.HasExpired(now))
}
