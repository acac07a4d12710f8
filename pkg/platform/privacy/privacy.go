package privacy

import (
	"net/netip"
	"strings"
)

// AnonymizeIP truncates an address before it reaches logs or audit:
// IPv4 keeps the first three octets, IPv6 the first 48 bits.
func AnonymizeIP(raw string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	bits := 24
	if addr.Is6() && !addr.Is4In6() {
		bits = 48
	}
	prefix, err := addr.Unmap().Prefix(bits)
	if err != nil {
		return ""
	}
	return prefix.String()
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
