package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ExtractIP returns the client IP address from the request.
// It takes the first parseable address of X-Forwarded-For, then X-Real-IP,
// then RemoteAddr. Entries that are not IP addresses are skipped.
//
// Forwarding headers are trusted as-is. Run the server behind a reverse
// proxy that overwrites them, or rate limits can be bypassed.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for part := range strings.SplitSeq(xff, ",") {
			if ip, ok := parseIP(part); ok {
				return ip
			}
		}
	}

	if ip, ok := parseIP(r.Header.Get("X-Real-IP")); ok {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseIP normalises an address, dropping IPv6 zones and IPv4-mapped prefixes.
func parseIP(s string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return addr.Unmap().WithZone("").String(), true
}
