package util

import (
	"net"
	"strconv"
	"strings"
)

// Literals the node treats specially wherever a hostname or an optional
// path is accepted.
const (
	NoneToken      = "none"
	LocalhostToken = "localhost"
)

// EqualFoldASCII reports whether a and b are equal when ASCII letters
// are compared without case.  Other bytes must match exactly, as with
// strcasecmp in the C locale.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// HasPrefixFold reports whether the first len(lit) bytes of s equal lit
// under ASCII case folding.  This is strncasecmp(s, lit, len(lit)) == 0:
// s may be longer than lit but never shorter.
func HasPrefixFold(s, lit string) bool {
	if len(s) < len(lit) {
		return false
	}
	return EqualFoldASCII(s[:len(lit)], lit)
}

// IsNone reports whether s is the "none" sentinel.
func IsNone(s string) bool { return HasPrefixFold(s, NoneToken) }

// IsLocalhost reports whether s names the local host.
func IsLocalhost(s string) bool { return HasPrefixFold(s, LocalhostToken) }

// OrNone returns "" for the "none" sentinel and s otherwise.
func OrNone(s string) string {
	if IsNone(s) {
		return ""
	}
	return s
}

// Atoi parses the leading decimal integer of s the way C's atoi does:
// leading spaces and a sign are accepted, parsing stops at the first
// non-digit, and input without digits yields 0.
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	if neg {
		n = -n
	}
	return int(n)
}

// ParsePort16 converts s to a port the way (in_port_t) atoi(s) does, so
// invalid input yields 0 and out-of-range values wrap.
func ParsePort16(s string) uint16 {
	return uint16(Atoi(s))
}

// FormatAddr returns "host:port".
func FormatAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
