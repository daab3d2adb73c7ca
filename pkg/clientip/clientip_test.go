package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/clientip"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "192.0.2.10:5555", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.10", want: "192.0.2.10"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{
			name:       "cloudflare wins",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.1", "X-Forwarded-For": "203.0.113.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.1",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.7, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.7",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "198.51.100.4"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.4",
		},
		{name: "nothing valid", remoteAddr: "bogus", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.Resolve(r))
		})
	}
}

func TestResolverWithHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:80"
	r.Header.Set("CF-Connecting-IP", "203.0.113.1")
	r.Header.Set("X-Forwarded-For", "203.0.113.2")

	assert.Equal(t, "203.0.113.2", clientip.New(clientip.WithHeaders("X-Forwarded-For")).Resolve(r))
	assert.Equal(t, "10.0.0.1", clientip.New(clientip.WithHeaders()).Resolve(r))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, ok := clientip.FromContext(r.Context())
		require.True(t, ok)
		got = ip

		attr, ok := clientip.LoggerExtractor(r.Context())
		require.True(t, ok)
		assert.Equal(t, "client_ip", attr.Key)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.9", got)
}

func TestFromContextEmpty(t *testing.T) {
	t.Parallel()

	_, ok := clientip.FromContext(context.Background())
	assert.False(t, ok)

	_, ok = clientip.LoggerExtractor(clientip.WithIP(context.Background(), ""))
	assert.False(t, ok)
}
