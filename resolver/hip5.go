package resolver

import (
	"strings"

	"github.com/LumeWeb/resolver-module-handshake/util"
)

// Built-in HIP-5 extension labels. A delegation target ending in one of
// these hands resolution authority to an external naming system; such a
// target is neither an ICANN domain nor a name to chase through the chain.
var builtinHIP5 = []string{"eth", "_eth"}

// isHIP5 reports whether name is a HIP-5 extension target under the union
// of the built-in extension labels and extra. Single-label names never
// qualify.
func isHIP5(name string, extra []string) bool {
	parts := strings.Split(strings.TrimSuffix(name, "."), ".")
	if len(parts) < 2 {
		return false
	}

	last := parts[len(parts)-1]

	for _, ext := range builtinHIP5 {
		if last == ext {
			return true
		}
	}

	for _, ext := range extra {
		if last == util.Normalize(ext) {
			return true
		}
	}

	return false
}
