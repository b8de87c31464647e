package server

import (
	"net"
	"net/http"
	"strings"

	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
)

// clientAddress derives the caller's network address: first value of a
// forwarded header behind a proxy, else the peer address. The result is only
// ever persisted as a one-way hash.
func clientAddress(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if addr := strings.TrimSpace(r.RemoteAddr); addr != "" {
		return addr
	}
	return eventdomain.UnknownAddress
}
