//go:build unit || e2e

package testutil

// Field returns an option that sets key on a request-body map. A nil value
// removes the key, which is how tests model omitted JSON fields.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
