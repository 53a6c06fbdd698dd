package admission

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultClientIP is used when no header and no peer address yields an IP.
const DefaultClientIP = "127.0.0.1"

// ipHeaders are scanned in order for a public client address.
var ipHeaders = []string{
	"Client-IP",
	"X-Forwarded-For",
	"X-Forwarded",
	"Forwarded",
}

// reservedPrefixes are special-purpose ranges not covered by the netip predicates.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("2001:db8::/32"),
}

// Resolver derives stable client keys from requests.
type Resolver struct {
	headers []string
}

// NewResolver creates a Resolver scanning the standard forwarding headers.
func NewResolver() *Resolver {
	return &Resolver{headers: ipHeaders}
}

// ClientIP returns the first public address found in the forwarding headers,
// then the connection peer address, then DefaultClientIP.
func (r *Resolver) ClientIP(req *http.Request) string {
	for _, h := range r.headers {
		v := req.Header.Get(h)
		if v == "" {
			continue
		}
		if addr, ok := parseCandidate(v); ok && isPublic(addr) {
			return addr.String()
		}
	}

	if addr, ok := peerAddr(req.RemoteAddr); ok {
		return addr.String()
	}

	return DefaultClientIP
}

// ClientKey returns the client IP, suffixed with "_<principal>" when the
// request is authenticated. The result is never empty.
func (r *Resolver) ClientKey(req *http.Request, principal string) string {
	ip := r.ClientIP(req)
	if principal == "" {
		return ip
	}
	return ip + "_" + principal
}

func parseCandidate(v string) (netip.Addr, bool) {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSpace(v)
	// RFC 7239 form: for="1.2.3.4"
	if len(v) > 4 && strings.EqualFold(v[:4], "for=") {
		v = strings.Trim(v[4:], `"`)
	}
	addr, err := netip.ParseAddr(v)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func isPublic(addr netip.Addr) bool {
	if !addr.IsValid() || addr.IsPrivate() || addr.IsLoopback() || addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() || addr.IsMulticast() ||
		addr.IsInterfaceLocalMulticast() {
		return false
	}
	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}

func peerAddr(remote string) (netip.Addr, bool) {
	if remote == "" {
		return netip.Addr{}, false
	}
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		host = remote
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
