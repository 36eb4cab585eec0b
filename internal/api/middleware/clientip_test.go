package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSourceAddress(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{name: "peer with port", remoteAddr: "203.0.113.9:51234", want: "203.0.113.9"},
		{name: "ipv6 peer", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "peer without port", remoteAddr: "203.0.113.9", want: "203.0.113.9"},
		{
			name:       "peer wins over headers",
			remoteAddr: "10.0.0.1:1000",
			forwarded:  "198.51.100.1",
			realIP:     "198.51.100.2",
			want:       "10.0.0.1",
		},
		{name: "non-ip peer falls back to headers", remoteAddr: "@unix-socket-peer:0", realIP: "198.51.100.3", want: "198.51.100.3"},
		{name: "oversized non-ip peer", remoteAddr: strings.Repeat("x", 64), want: "0.0.0.0"},
		{name: "first forwarded entry", forwarded: "198.51.100.1, 10.0.0.1", want: "198.51.100.1"},
		{name: "real ip header", realIP: "198.51.100.2", want: "198.51.100.2"},
		{name: "garbage headers ignored", forwarded: "not-an-ip", realIP: "also bad", want: "0.0.0.0"},
		{name: "nothing available", want: "0.0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/posts/1/like", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			if got := SourceAddress(req); got != tt.want {
				t.Errorf("SourceAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
