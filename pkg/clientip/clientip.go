package clientip

import (
	"net"
	"net/http"
	"strings"
)

// forwardingHeaders are consulted in order when proxy headers are trusted.
var forwardingHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the client address. With trustProxy set, the first
// valid address in the forwarding headers wins; otherwise only the
// connection address is used. The result is "" when nothing parses.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, name := range forwardingHeaders {
			value := r.Header.Get(name)
			if value == "" {
				continue
			}
			// X-Forwarded-For lists the original client first.
			for part := range strings.SplitSeq(value, ",") {
				if ip := normalize(part); ip != "" {
					return ip
				}
			}
		}
	}
	return RemoteIP(r)
}

// RemoteIP returns the address of the connection peer.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
