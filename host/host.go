// Package host provides a reference multi-root resolver. It dispatches
// queries to registered backend modules in order and routes
// nameserver-scoped subqueries to a plain DNS querier, which is the
// host-owned half of the subquery convention.
package host

import (
	"context"
	"sync"

	"github.com/hlandau/xlog"
	"github.com/miekg/dns"
	"gopkg.in/hlandau/madns.v2/merr"

	"github.com/LumeWeb/resolver-module-handshake/resolver"
	"github.com/LumeWeb/resolver-module-handshake/tldset"
	"github.com/LumeWeb/resolver-module-handshake/util"
)

var log, Log = xlog.New("hdns.host")

// Module is a resolver backend.
type Module interface {
	Name() string

	// SupportedTLDs returns the top-level labels this backend claims.
	SupportedTLDs(ctx context.Context) ([]string, error)

	Resolve(ctx context.Context, domain, qtype string, opts resolver.Options, bypassCache bool) ([]resolver.Record, error)
}

// DNSQuerier answers a single question against an explicit nameserver.
// Implemented by dnsclient.Client.
type DNSQuerier interface {
	Lookup(ctx context.Context, qname string, qtype uint16, nameserver string) ([]resolver.Record, error)
}

// Resolver is the host-side resolution entry point shared by all backends.
type Resolver struct {
	// DNS performs nameserver-scoped and fallback queries.
	DNS DNSQuerier

	// Fallback, if set, is a recursive nameserver (host or host:port)
	// used for ICANN-rooted names no module answers.
	Fallback string

	mu      sync.RWMutex
	modules []Module
}

// Register appends a backend module. Modules are consulted in registration
// order.
func (h *Resolver) Register(m Module) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.modules = append(h.modules, m)
}

// ListModules enumerates the registered modules for sibling capability
// queries.
func (h *Resolver) ListModules(ctx context.Context) ([]resolver.Module, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]resolver.Module, len(h.modules))
	for i, m := range h.modules {
		out[i] = m
	}

	return out, nil
}

// Resolve is the generic entry point. Requests marked as subqueries are
// bound to their nameserver and go straight to the DNS querier; everything
// else is offered to the modules in order, with a plain-DNS fallback for
// ICANN-rooted names. The first module to produce records wins.
func (h *Resolver) Resolve(ctx context.Context, domain, qtype string, opts resolver.Options, bypassCache bool) ([]resolver.Record, error) {
	if opts.Subquery && opts.Nameserver != "" {
		return h.lookupVia(ctx, domain, qtype, opts, opts.Nameserver)
	}

	h.mu.RLock()
	modules := append([]Module(nil), h.modules...)
	h.mu.RUnlock()

	for _, m := range modules {
		records, err := m.Resolve(ctx, domain, qtype, opts, bypassCache)
		if err != nil {
			log.Errore(err, "module ", m.Name(), " failed for ", domain)
			continue
		}
		if len(records) > 0 {
			return records, nil
		}
	}

	if h.Fallback != "" && tldset.Has(util.TopLevel(domain)) {
		return h.lookupVia(ctx, domain, qtype, opts, h.Fallback)
	}

	return nil, nil
}

func (h *Resolver) lookupVia(ctx context.Context, domain, qtype string, opts resolver.Options, nameserver string) ([]resolver.Record, error) {
	if h.DNS == nil {
		return nil, nil
	}

	wire, ok := WireType(qtype)
	if !ok {
		return nil, nil
	}

	records, err := h.DNS.Lookup(ctx, domain, wire, nameserver)
	if err == merr.ErrNoSuchDomain {
		return nil, nil
	}
	if err != nil {
		log.Errore(err, "dns lookup for ", domain, " via ", nameserver)
		return nil, nil
	}

	if qtype == resolver.TypeA && opts.IPv6 {
		records6, err := h.DNS.Lookup(ctx, domain, dns.TypeAAAA, nameserver)
		if err == nil {
			records = append(records, records6...)
		}
	}

	return records, nil
}

// WireType maps a result record type string to its DNS wire type.
func WireType(qtype string) (uint16, bool) {
	switch qtype {
	case resolver.TypeA:
		return dns.TypeA, true
	case resolver.TypeCNAME:
		return dns.TypeCNAME, true
	case resolver.TypeNS:
		return dns.TypeNS, true
	case resolver.TypeTXT:
		return dns.TypeTXT, true
	}

	return 0, false
}
