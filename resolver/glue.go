package resolver

import (
	"context"

	"github.com/LumeWeb/resolver-module-handshake/hsrpc"
	"github.com/LumeWeb/resolver-module-handshake/util"
)

// processGlue resolves the original name using the explicit nameserver
// address carried in a glue record, skipping a separate lookup for the
// delegated authority.
func (r *Resolver) processGlue(ctx context.Context, domain string, rec *hsrpc.Record, qtype string, opts Options, bypassCache bool) []Record {
	switch qtype {
	case TypeA, TypeCNAME:
	default:
		return nil
	}

	if !util.IsDomain(rec.NS) || !util.IsIP(rec.Address) {
		return nil
	}

	return r.subquery(ctx, domain, qtype, opts, rec.Address, bypassCache)
}
