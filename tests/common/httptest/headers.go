//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertNoHeaders fails if any of keys was sent.
func AssertNoHeaders(t *testing.T, w *httptest.ResponseRecorder, keys ...string) {
	t.Helper()
	for _, k := range keys {
		assert.Empty(t, w.Header().Values(k), "unexpected header %s", k)
	}
}
