//go:build unit || e2e

package testutil

// Field sets key to value; a nil value removes the key so "missing" and "null" stay distinct from "empty".
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
