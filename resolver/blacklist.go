package resolver

import (
	"context"

	"github.com/LumeWeb/resolver-module-handshake/util"
)

// buildBlacklist unions the top-level labels claimed by every sibling
// backend. A sibling that fails or reports nothing contributes nothing;
// there is no error path.
func (r *Resolver) buildBlacklist(ctx context.Context) map[string]struct{} {
	blacklist := map[string]struct{}{}

	modules, err := r.host.ListModules(ctx)
	if err != nil {
		return blacklist
	}

	for _, m := range modules {
		tlds, err := m.SupportedTLDs(ctx)
		if err != nil {
			continue
		}

		for _, tld := range tlds {
			blacklist[util.Normalize(tld)] = struct{}{}
		}
	}

	return blacklist
}
