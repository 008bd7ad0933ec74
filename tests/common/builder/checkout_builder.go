//go:build unit || e2e

package builder

// CheckoutBuilder assembles /prefer request bodies as loose maps so tests can
// knock out or corrupt individual fields.
type CheckoutBuilder struct {
	fields map[string]any
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		fields: map[string]any{
			"originalUrl": "https://example.com/landing",
			"quantity":    1,
		},
	}
}

func (b *CheckoutBuilder) WithOriginalURL(url string) *CheckoutBuilder {
	b.fields["originalUrl"] = url
	return b
}

func (b *CheckoutBuilder) WithAlias(alias string) *CheckoutBuilder {
	b.fields["customAlias"] = alias
	return b
}

func (b *CheckoutBuilder) WithExpiry(expiry string) *CheckoutBuilder {
	b.fields["expiryDate"] = expiry
	return b
}

func (b *CheckoutBuilder) BuildRequestBody() map[string]any {
	out := make(map[string]any, len(b.fields))
	for k, v := range b.fields {
		out[k] = v
	}
	return out
}
