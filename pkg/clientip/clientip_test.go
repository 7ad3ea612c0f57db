package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fantasyname/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{"remote addr", "192.0.2.1:5555", nil, false, "192.0.2.1"},
		{"remote without port", "192.0.2.1", nil, false, "192.0.2.1"},
		{"ipv6 remote", "[2001:db8::1]:443", nil, false, "2001:db8::1"},
		{"headers ignored when untrusted", "192.0.2.1:5555", map[string]string{"X-Forwarded-For": "203.0.113.9"}, false, "192.0.2.1"},
		{"forwarded for first entry", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"}, true, "203.0.113.9"},
		{"forwarded for skips garbage", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "unknown, 203.0.113.7"}, true, "203.0.113.7"},
		{"cloudflare wins", "10.0.0.1:1", map[string]string{"CF-Connecting-IP": "198.51.100.4", "X-Forwarded-For": "203.0.113.9"}, true, "198.51.100.4"},
		{"real ip", "10.0.0.1:1", map[string]string{"X-Real-IP": "198.51.100.5"}, true, "198.51.100.5"},
		{"invalid headers fall back", "10.0.0.1:1", map[string]string{"X-Real-IP": "nope"}, true, "10.0.0.1"},
		{"unparseable remote", "pipe", nil, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r, tt.trustProxy))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.9", got)
	assert.Empty(t, clientip.FromContext(r.Context()))
}
