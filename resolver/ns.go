package resolver

import (
	"context"
	"strings"

	"github.com/LumeWeb/resolver-module-handshake/hsrpc"
	"github.com/LumeWeb/resolver-module-handshake/tldset"
	"github.com/LumeWeb/resolver-module-handshake/util"
)

// processNS handles a single NS chain record: delegation to another
// nameserver, possibly via glue, an ICANN-rooted authority, or a HIP-5
// extension target.
func (r *Resolver) processNS(ctx context.Context, domain string, rec *hsrpc.Record, set []hsrpc.Record, qtype string, opts Options, bypassCache bool) []Record {
	switch qtype {
	case TypeA, TypeCNAME, TypeNS:
	default:
		return nil
	}

	// Glue, when present, always wins over recursive delegation for
	// address-type queries.
	if glue := findGlue(set, rec.NS); glue != nil && qtype != TypeNS {
		return r.processGlue(ctx, domain, glue, qtype, opts, bypassCache)
	}

	// Raw delegation names are returned verbatim for NS queries, never
	// chased.
	if qtype == TypeNS {
		return []Record{{Type: TypeNS, Value: rec.NS}}
	}

	target := util.Normalize(rec.NS)

	if util.IsDomain(target) && !isHIP5(target, opts.HIP5) {
		if strings.Contains(target, ".") && tldset.Has(util.TopLevel(target)) {
			// Classic DNS delegation: the ICANN-rooted authority is
			// queried for the original name directly.
			return r.subquery(ctx, domain, qtype, opts, target, bypassCache)
		}

		return r.delegateChain(ctx, domain, target, qtype, opts, bypassCache)
	}

	// HIP-5 targets and anything else that cannot be treated as a
	// nameserver name are resolved directly as ordinary names.
	records, err := r.host.Resolve(ctx, rec.NS, qtype, opts, bypassCache)
	if err != nil {
		log.Errore(err, "direct resolve of delegation target ", rec.NS)
	}

	if len(records) == 0 {
		// Last resort: surface the raw delegation target rather than
		// producing nothing.
		return []Record{{Type: TypeNS, Value: rec.NS}}
	}

	return records
}

// delegateChain handles delegation to a nameserver that is itself
// chain-rooted: the nameserver's own address is resolved first, then the
// original name is re-queried against that address.
func (r *Resolver) delegateChain(ctx context.Context, domain, target, qtype string, opts Options, bypassCache bool) []Record {
	addrs, err := r.host.Resolve(ctx, target, TypeA, opts, bypassCache)
	if err != nil {
		log.Errore(err, "cannot resolve chain-rooted nameserver ", target)
		return nil
	}

	for _, rec := range addrs {
		if rec.Type == TypeA {
			return r.subquery(ctx, domain, qtype, opts, rec.Value, bypassCache)
		}
	}

	return nil
}
