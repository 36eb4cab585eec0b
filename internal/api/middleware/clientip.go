package middleware

import (
	"net"
	"net/http"
	"strings"

	"Quill/internal/core/engagement"
)

// SourceAddress identifies the caller for anonymous likes.
// Order: host of the direct peer, first X-Forwarded-For entry, X-Real-IP,
// then engagement.DefaultSourceAddress. Every candidate must parse as an IP.
func SourceAddress(r *http.Request) string {
	if host := remoteHost(r.RemoteAddr); host != "" {
		return host
	}

	// Check X-Forwarded-For header (if behind proxy)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(realIP) != nil {
		return realIP
	}

	return engagement.DefaultSourceAddress
}

// remoteHost strips the port from a host:port peer address.
// Returns "" unless the result is an IP.
func remoteHost(remoteAddr string) string {
	host := strings.TrimSpace(remoteAddr)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if net.ParseIP(host) == nil {
		return ""
	}
	return host
}
