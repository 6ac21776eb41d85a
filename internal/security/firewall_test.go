package security

import "testing"

func TestFirewallDisabledAlwaysAllows(t *testing.T) {
	f := NewFirewall(false, nil, "", "")
	if !f.Allow("203.0.113.5", "sip:anyone@example.com") {
		t.Fatal("disabled firewall must allow everything")
	}
}

func TestFirewallAllowListMatch(t *testing.T) {
	f := NewFirewall(true, []string{"198.51.100.0/24"}, "", "")
	if !f.Allow("198.51.100.42", "sip:x@y") {
		t.Fatal("IP within the allow-listed CIDR must be allowed")
	}
	if f.Allow("203.0.113.1", "sip:x@y") {
		t.Fatal("IP outside the allow-list must be rejected")
	}
}

func TestFirewallRFC1918LocalTestingBypass(t *testing.T) {
	f := NewFirewall(true, nil, "gateway.example.com", "sip.provider.example.net")
	if !f.Allow("192.168.1.10", "sip:caller@gateway.example.com") {
		t.Fatal("private IP + matching public identity must be allowed for local testing")
	}
	if !f.Allow("10.0.0.5", "sip:caller@sip.provider.example.net") {
		t.Fatal("private IP + matching provider host must be allowed for local testing")
	}
}

func TestFirewallRFC1918WithoutMatchingIdentityRejected(t *testing.T) {
	f := NewFirewall(true, nil, "gateway.example.com", "")
	if f.Allow("192.168.1.10", "sip:someone@unrelated.example") {
		t.Fatal("private IP without a matching identity must still be rejected")
	}
}

func TestFirewallMalformedSourceIPRejected(t *testing.T) {
	f := NewFirewall(true, []string{"198.51.100.0/24"}, "", "")
	if f.Allow("not-an-ip", "sip:x@y") {
		t.Fatal("unparseable source IP must be rejected")
	}
}

func TestFirewallMalformedCIDRSkipped(t *testing.T) {
	f := NewFirewall(true, []string{"not-a-cidr", "198.51.100.0/24"}, "", "")
	if !f.Allow("198.51.100.1", "sip:x@y") {
		t.Fatal("a malformed CIDR entry must not prevent the valid ones from matching")
	}
}
