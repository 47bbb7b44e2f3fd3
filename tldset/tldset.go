// Package tldset answers membership queries against the ICANN root zone
// TLD list. The list itself is generated; see cmd/gentlds.
package tldset

import "strings"

//go:generate go run github.com/LumeWeb/resolver-module-handshake/cmd/gentlds tlds.gen.go

// Has returns true if label is a TLD delegated in the ICANN root zone.
// Comparison is case-insensitive and ignores a trailing dot.
func Has(label string) bool {
	label = strings.TrimSuffix(strings.ToLower(label), ".")
	_, ok := tlds[label]
	return ok
}
