package server

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ProxyMatcher recognises reverse proxies whose X-Forwarded-For is trusted.
// Entries are single addresses or CIDR ranges.
type ProxyMatcher struct {
	prefixes []netip.Prefix
}

// NewProxyMatcher parses entries, skipping any that are neither an address nor a range
func NewProxyMatcher(entries []string) ProxyMatcher {
	var m ProxyMatcher
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			m.prefixes = append(m.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			slog.Warn(LogMsgInvalidTrustedProxy, "entry", entry)
			continue
		}
		m.prefixes = append(m.prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return m
}

func (m ProxyMatcher) trusts(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range m.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// clientIP returns the caller's address.
// X-Forwarded-For is only honoured when the direct peer is a trusted proxy.
func (m ProxyMatcher) clientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !m.trusts(remoteIP) {
		return remoteIP
	}
	if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
		// Rightmost entry is the hop that reached the trusted proxy
		ips := strings.Split(forwarded, ",")
		if last := strings.TrimSpace(ips[len(ips)-1]); last != "" {
			return last
		}
	}
	return remoteIP
}
