package security

import (
	"net"
	"strings"
	"sync/atomic"
)

// Firewall decides whether an inbound SIP INVITE's source IP is allowed to
// reach the gateway at all, before any call state is created. The
// blacklist (a different, caller-identity-keyed check) always runs first and
// is independent of this — a disabled firewall does not waive it (spec §9
// open question 2). enabled is an atomic.Bool because the dashboard's
// /firewall toggle runs on an HTTP handler goroutine while Allow is read
// from the SIP accept path.
type Firewall struct {
	enabled        atomic.Bool
	allowed        []*net.IPNet
	publicIdentity string
	providerHost   string
}

// NewFirewall builds a Firewall from a list of CIDR strings (IPv4 or IPv6).
// Malformed entries are skipped. publicIdentity and providerHost are used
// only for the RFC1918 local-testing bypass.
func NewFirewall(enabled bool, cidrs []string, publicIdentity, providerHost string) *Firewall {
	f := &Firewall{publicIdentity: publicIdentity, providerHost: providerHost}
	f.enabled.Store(enabled)
	for _, c := range cidrs {
		_, ipnet, err := net.ParseCIDR(c)
		if err != nil {
			continue
		}
		f.allowed = append(f.allowed, ipnet)
	}
	return f
}

// SetEnabled toggles the firewall at runtime (the dashboard's /firewall
// endpoint per §9 open question 2). Disabling it never waives the
// blacklist check, which callers must still run independently.
func (f *Firewall) SetEnabled(enabled bool) {
	f.enabled.Store(enabled)
}

// Enabled reports the firewall's current runtime state.
func (f *Firewall) Enabled() bool {
	return f.enabled.Load()
}

var rfc1918Nets = mustParseCIDRs(
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"127.0.0.0/8",
)

func mustParseCIDRs(cidrs ...string) []*net.IPNet {
	out := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(c)
		if err != nil {
			panic(err)
		}
		out = append(out, n)
	}
	return out
}

func isPrivate(ip net.IP) bool {
	for _, n := range rfc1918Nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// Allow reports whether a SIP INVITE from sourceIP, claiming callerURI, may
// reach the gateway under the firewall's own policy alone — the blacklist
// check is the caller's responsibility and must run first.
func (f *Firewall) Allow(sourceIP, callerURI string) bool {
	if !f.enabled.Load() {
		return true
	}
	ip := net.ParseIP(sourceIP)
	if ip == nil {
		return false
	}
	for _, n := range f.allowed {
		if n.Contains(ip) {
			return true
		}
	}
	if isPrivate(ip) && f.matchesLocalIdentity(callerURI) {
		return true
	}
	return false
}

func (f *Firewall) matchesLocalIdentity(callerURI string) bool {
	if callerURI == "" {
		return false
	}
	lower := strings.ToLower(callerURI)
	if f.publicIdentity != "" && strings.Contains(lower, strings.ToLower(f.publicIdentity)) {
		return true
	}
	if f.providerHost != "" && strings.Contains(lower, strings.ToLower(f.providerHost)) {
		return true
	}
	return false
}
