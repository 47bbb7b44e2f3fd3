package util

import (
	"net"
	"regexp"
	"strings"

	"github.com/miekg/dns"
)

// Split a domain name a.b.c.d.e into parts e (the head) and a.b.c.d (the rest).
func SplitDomainHead(name string) (head, rest string) {
	if len(name) > 0 && name[len(name)-1] == '.' {
		name = name[0 : len(name)-1]
	}

	parts := strings.Split(name, ".")

	head = parts[len(parts)-1]

	if len(parts) >= 2 {
		rest = strings.Join(parts[0:len(parts)-1], ".")
	}

	return
}

// TopLevel returns the rightmost label of a name, lowercased. The top-level
// label is the key a name is published under on the chain.
func TopLevel(name string) string {
	head, _ := SplitDomainHead(strings.ToLower(name))
	return head
}

// Normalize lowercases a name and strips surrounding whitespace and any
// trailing dot.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".")
}

// This is used to validate NS targets and other places where an IP address
// is not allowed. All-numeric names are excluded by requiring the final
// label to start with an alphabetic character or underscore.
var reHostName = regexp.MustCompilePOSIX(`^(([a-z0-9_][a-z0-9_-]{0,62}\.)*[a-z_][a-z0-9_-]{0,62}\.?|\.)$`)
var reLabel = regexp.MustCompilePOSIX(`^[a-z_][a-z0-9_-]*$`)

// IsDomain returns true if name is a syntactically valid hostname. A bare
// label qualifies.
func IsDomain(name string) bool {
	if name == "" {
		return false
	}

	name = dns.Fqdn(strings.ToLower(name))
	return len(name) <= 255 && reHostName.MatchString(name)
}

// IsLabel returns true if name is a single valid label.
func IsLabel(name string) bool {
	return len(name) <= 63 && reLabel.MatchString(name)
}

// IsIP returns true if s is a literal IPv4 or IPv6 address.
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}
