package ios

import "strings"

// NormalizeMAC converts a hardware address to canonical form: lower-case hex
// octets joined by colons ("00:50:79:66:68:02"). Cisco dotted notation
// ("0050.7966.6802"), dash-separated, and colon-separated inputs all map to
// the same canonical string. Anything that does not contain exactly twelve
// hex digits is returned lower-cased and trimmed, unconverted.
func NormalizeMAC(s string) string {
	stripped := strings.ToLower(strings.TrimSpace(s))
	stripped = strings.NewReplacer(".", "", ":", "", "-", "").Replace(stripped)

	if len(stripped) != 12 || !isHex(stripped) {
		return strings.ToLower(strings.TrimSpace(s))
	}

	var b strings.Builder
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(stripped[i : i+2])
	}
	return b.String()
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
