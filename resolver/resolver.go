// Package resolver implements record resolution for names anchored in the
// Handshake naming chain. Given the record set published for a name's
// top-level label, it decides which records satisfy the caller's query,
// resolves delegation (including HIP-5 extension delegation), and recurses
// through the host resolver without re-entering its own top-level logic.
package resolver

import (
	"context"

	"github.com/hlandau/xlog"

	"github.com/LumeWeb/resolver-module-handshake/hsrpc"
	"github.com/LumeWeb/resolver-module-handshake/util"
)

var log, Log = xlog.New("hdns.resolver")

// Result record types. An IPv6 literal obtained via a SYNTH6 record or an
// AAAA answer is carried in an A-typed record; there is no separate AAAA
// type in the result enum.
const (
	TypeA     = "A"
	TypeCNAME = "CNAME"
	TypeNS    = "NS"
	TypeTXT   = "TXT"
)

// Record is a single resolution result.
type Record struct {
	Type  string
	Value string
}

// Options modify a single resolve call.
type Options struct {
	// Also emit synthesized IPv6 addresses for A queries.
	IPv6 bool

	// Extra HIP-5 extension labels honoured in addition to the built-in
	// set.
	HIP5 []string

	// Subquery marks a delegated re-query scoped to Nameserver. It is set
	// internally when delegation is followed; a call already marked as a
	// subquery must not re-enter top-level chain resolution.
	Subquery   bool
	Nameserver string
}

// Module is the capability surface of a sibling resolver backend, as
// consulted when building the blacklist.
type Module interface {
	// SupportedTLDs returns the top-level labels the backend claims.
	SupportedTLDs(ctx context.Context) ([]string, error)
}

// Host is the surface this resolver requires from the surrounding
// multi-root resolver.
type Host interface {
	// ListModules enumerates the registered sibling backends.
	ListModules(ctx context.Context) ([]Module, error)

	// Resolve is the generic re-entrant resolution entry point. When the
	// options mark the call as a subquery the host routes it as a
	// nameserver-bound lookup rather than a fresh top-level one.
	Resolve(ctx context.Context, domain, qtype string, opts Options, bypassCache bool) ([]Record, error)
}

// ChainQuerier fetches the record set published on the chain for a
// top-level label. A name with no published records yields an empty set,
// not an error.
type ChainQuerier interface {
	NameResource(ctx context.Context, name string, bypassCache bool) ([]hsrpc.Record, error)
}

// Resolver resolves chain-anchored names.
type Resolver struct {
	host  Host
	chain ChainQuerier
}

func New(host Host, chain ChainQuerier) *Resolver {
	return &Resolver{host: host, chain: chain}
}

// Resolve answers a query for domain with records of the requested type.
// A nil record slice with a nil error means this backend has nothing to
// say about the name; the only error returned is a failed chain fetch.
func (r *Resolver) Resolve(ctx context.Context, domain, qtype string, opts Options, bypassCache bool) ([]Record, error) {
	tld := util.TopLevel(domain)

	// Names whose top-level label another backend claims are not ours.
	if _, claimed := r.buildBlacklist(ctx)[tld]; claimed {
		return nil, nil
	}

	// Literal IP addresses are not resolved as names.
	if util.IsIP(domain) {
		return nil, nil
	}

	// A delegated re-query must not re-enter top-level chain resolution.
	if opts.Subquery {
		return nil, nil
	}

	set, err := r.chain.NameResource(ctx, tld, bypassCache)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, nil
	}

	var out []Record
	for i := range set {
		out = append(out, r.processRecord(ctx, domain, &set[i], set, qtype, opts, bypassCache)...)
	}

	return dedupe(out), nil
}

// processRecord dispatches one chain record to its handler. Handlers are
// independent: each returns the result records it contributes and must not
// rely on records processed after it. Unrecognized record kinds yield
// nothing, so new chain record kinds are forward compatible.
func (r *Resolver) processRecord(ctx context.Context, domain string, rec *hsrpc.Record, set []hsrpc.Record, qtype string, opts Options, bypassCache bool) []Record {
	switch rec.Type {
	case hsrpc.KindNS:
		return r.processNS(ctx, domain, rec, set, qtype, opts, bypassCache)
	case hsrpc.KindGlue4, hsrpc.KindGlue6:
		return r.processGlue(ctx, domain, rec, qtype, opts, bypassCache)
	case hsrpc.KindTXT:
		return processTXT(rec, qtype)
	case hsrpc.KindSynth4, hsrpc.KindSynth6:
		return processSynth(rec, qtype, opts)
	default:
		return nil
	}
}

// dedupe filters records to uniqueness by (type, value), preserving
// first-seen order.
func dedupe(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[Record]struct{}, len(records))
	out := make([]Record, 0, len(records))

	for _, rec := range records {
		if _, dup := seen[rec]; dup {
			continue
		}

		seen[rec] = struct{}{}
		out = append(out, rec)
	}

	return out
}

// subquery re-enters the host resolver with the request scoped to a
// specific nameserver. The subquery flag keeps the call from re-entering
// this resolver; routing to the delegated authority is owned by the host.
func (r *Resolver) subquery(ctx context.Context, domain, qtype string, opts Options, nameserver string, bypassCache bool) []Record {
	opts.Subquery = true
	opts.Nameserver = nameserver

	records, err := r.host.Resolve(ctx, domain, qtype, opts, bypassCache)
	if err != nil {
		log.Errore(err, "subquery for ", domain, " via ", nameserver)
		return nil
	}

	return records
}
