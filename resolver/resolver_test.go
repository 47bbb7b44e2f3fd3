package resolver_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/LumeWeb/resolver-module-handshake/hsrpc"
	"github.com/LumeWeb/resolver-module-handshake/resolver"
)

type resolveCall struct {
	Domain      string
	Qtype       string
	Opts        resolver.Options
	BypassCache bool
}

type fakeModule struct {
	tlds []string
	err  error
}

func (m *fakeModule) SupportedTLDs(ctx context.Context) ([]string, error) {
	return m.tlds, m.err
}

type fakeHost struct {
	modules []resolver.Module
	answer  func(call resolveCall) ([]resolver.Record, error)
	calls   []resolveCall
}

func (h *fakeHost) ListModules(ctx context.Context) ([]resolver.Module, error) {
	return h.modules, nil
}

func (h *fakeHost) Resolve(ctx context.Context, domain, qtype string, opts resolver.Options, bypassCache bool) ([]resolver.Record, error) {
	call := resolveCall{Domain: domain, Qtype: qtype, Opts: opts, BypassCache: bypassCache}
	h.calls = append(h.calls, call)

	if h.answer == nil {
		return nil, nil
	}

	return h.answer(call)
}

type fakeChain struct {
	records map[string][]hsrpc.Record
	err     error
	calls   int
}

func (c *fakeChain) NameResource(ctx context.Context, name string, bypassCache bool) ([]hsrpc.Record, error) {
	c.calls++

	if c.err != nil {
		return nil, c.err
	}

	return c.records[name], nil
}

func newTestResolver(host *fakeHost, chain *fakeChain) *resolver.Resolver {
	if host == nil {
		host = &fakeHost{}
	}
	if chain == nil {
		chain = &fakeChain{}
	}

	return resolver.New(host, chain)
}

func checkRecords(t *testing.T, got []resolver.Record, want []resolver.Record) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d records (%+v), want %d (%+v)", len(got), got, len(want), want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Scenario A: an NS chain record answers an NS query verbatim, without
// being chased.
func TestNSQueryVerbatim(t *testing.T) {
	host := &fakeHost{}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "ns1.com"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeNS, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeNS, Value: "ns1.com"}})

	if len(host.calls) != 0 {
		t.Errorf("NS query must not recurse, got calls %+v", host.calls)
	}
}

// Scenario B: a SYNTH4 record answers an A query directly.
func TestSynth4(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindSynth4, Address: "1.2.3.4"}},
	}}
	r := newTestResolver(nil, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "1.2.3.4"}})
}

func TestSynth6RequiresIPv6Option(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindSynth6, Address: "2001:db8::1"}},
	}}
	r := newTestResolver(nil, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("SYNTH6 must not be emitted without the ipv6 option, got %+v", records)
	}

	records, err = r.Resolve(context.Background(), "example", resolver.TypeA, resolver.Options{IPv6: true}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The IPv6 literal rides in an A-typed record.
	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "2001:db8::1"}})
}

// Scenario C: only the last TXT entry is authoritative content.
func TestTXTLastEntry(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindTXT, TXT: []string{"v=1", "hello"}}},
	}}
	r := newTestResolver(nil, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeTXT, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeTXT, Value: "hello"}})
}

func TestTXTEmptySequence(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindTXT}},
	}}
	r := newTestResolver(nil, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeTXT, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("empty TXT sequence must yield nothing, got %+v", records)
	}
}

// Scenario D: glue pairing triggers a subquery bound to the glue address,
// and the subquery's records are the final payload.
func TestGluePairingSubquery(t *testing.T) {
	host := &fakeHost{
		answer: func(call resolveCall) ([]resolver.Record, error) {
			if call.Opts.Subquery && call.Opts.Nameserver == "9.9.9.9" {
				return []resolver.Record{{Type: resolver.TypeA, Value: "5.6.7.8"}}, nil
			}
			return nil, nil
		},
	}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {
			{Type: hsrpc.KindNS, NS: "ns1.com"},
			{Type: hsrpc.KindGlue4, NS: "ns1.com", Address: "9.9.9.9"},
		},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "sub.example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "5.6.7.8"}})

	for _, call := range host.calls {
		if !call.Opts.Subquery || call.Opts.Nameserver != "9.9.9.9" {
			t.Errorf("expected only glue-addressed subqueries, got %+v", call)
		}
		if call.Domain != "sub.example" {
			t.Errorf("subquery must target the original domain, got %q", call.Domain)
		}
	}
}

// Glue never overrides the verbatim answer for an NS query.
func TestGlueIgnoredForNSQuery(t *testing.T) {
	host := &fakeHost{}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {
			{Type: hsrpc.KindNS, NS: "ns1.com"},
			{Type: hsrpc.KindGlue4, NS: "ns1.com", Address: "9.9.9.9"},
		},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeNS, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeNS, Value: "ns1.com"}})

	if len(host.calls) != 0 {
		t.Errorf("NS query must not issue subqueries, got %+v", host.calls)
	}
}

// Scenario E: a top-level label claimed by a sibling backend short-circuits
// before the chain is consulted.
func TestBlacklistGate(t *testing.T) {
	host := &fakeHost{modules: []resolver.Module{&fakeModule{tlds: []string{"crypto"}}}}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"crypto": {{Type: hsrpc.KindSynth4, Address: "1.2.3.4"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "wallet.crypto", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("blacklisted TLD must yield nothing, got %+v", records)
	}
	if chain.calls != 0 {
		t.Errorf("blacklisted TLD must not hit the chain, got %d calls", chain.calls)
	}
}

func TestBlacklistUnionsSiblings(t *testing.T) {
	host := &fakeHost{modules: []resolver.Module{
		&fakeModule{tlds: []string{"crypto"}},
		&fakeModule{err: errors.New("sibling down")},
		&fakeModule{tlds: []string{"zil", "Nft"}},
	}}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"nft": {{Type: hsrpc.KindSynth4, Address: "1.2.3.4"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "art.nft", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 || chain.calls != 0 {
		t.Errorf("union of sibling TLDs must gate (records %+v, chain calls %d)", records, chain.calls)
	}
}

// Scenario F: an empty record set is an empty outcome, not an error.
func TestEmptyRecordSet(t *testing.T) {
	r := newTestResolver(nil, &fakeChain{})

	records, err := r.Resolve(context.Background(), "nothing", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records != nil {
		t.Errorf("empty record set must yield nil records, got %+v", records)
	}
}

func TestTransportError(t *testing.T) {
	chain := &fakeChain{err: errors.New("connection refused")}
	r := newTestResolver(nil, chain)

	_, err := r.Resolve(context.Background(), "example", resolver.TypeA, resolver.Options{}, false)
	if err == nil {
		t.Fatal("transport error must surface")
	}
}

func TestSubqueryGuard(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindSynth4, Address: "1.2.3.4"}},
	}}
	r := newTestResolver(nil, chain)

	opts := resolver.Options{Subquery: true, Nameserver: "9.9.9.9", IPv6: true}
	records, err := r.Resolve(context.Background(), "example", resolver.TypeA, opts, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("subquery-flagged request must yield nothing, got %+v", records)
	}
	if chain.calls != 0 {
		t.Errorf("subquery-flagged request must not hit the chain, got %d calls", chain.calls)
	}
}

func TestLiteralIPGate(t *testing.T) {
	chain := &fakeChain{}
	r := newTestResolver(nil, chain)

	for _, domain := range []string{"1.2.3.4", "2001:db8::1"} {
		records, err := r.Resolve(context.Background(), domain, resolver.TypeA, resolver.Options{}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("literal IP %q must yield nothing, got %+v", domain, records)
		}
	}

	if chain.calls != 0 {
		t.Errorf("literal IPs must not hit the chain, got %d calls", chain.calls)
	}
}

// NS records contribute nothing to queries outside {A, CNAME, NS}.
func TestNSApplicabilityGate(t *testing.T) {
	host := &fakeHost{}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "ns1.com"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeTXT, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("NS record must not answer a TXT query, got %+v", records)
	}
	if len(host.calls) != 0 {
		t.Errorf("NS record must not recurse for a TXT query, got %+v", host.calls)
	}
}

func TestDedup(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {
			{Type: hsrpc.KindSynth4, Address: "1.2.3.4"},
			{Type: hsrpc.KindSynth4, Address: "5.6.7.8"},
			{Type: hsrpc.KindSynth4, Address: "1.2.3.4"},
		},
	}}
	r := newTestResolver(nil, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{
		{Type: resolver.TypeA, Value: "1.2.3.4"},
		{Type: resolver.TypeA, Value: "5.6.7.8"},
	})
}

// An ICANN-rooted delegation target is used as the subquery nameserver
// directly.
func TestICANNDelegation(t *testing.T) {
	host := &fakeHost{
		answer: func(call resolveCall) ([]resolver.Record, error) {
			if call.Opts.Subquery && call.Opts.Nameserver == "ns1.example.com" {
				return []resolver.Record{{Type: resolver.TypeA, Value: "7.7.7.7"}}, nil
			}
			return nil, nil
		},
	}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "ns1.example.com"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "www.example", resolver.TypeA, resolver.Options{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "7.7.7.7"}})

	if len(host.calls) != 1 {
		t.Fatalf("expected exactly one subquery, got %+v", host.calls)
	}

	call := host.calls[0]
	if call.Domain != "www.example" || !call.Opts.Subquery || call.Opts.Nameserver != "ns1.example.com" {
		t.Errorf("unexpected subquery %+v", call)
	}
	if !call.BypassCache {
		t.Error("bypassCache must propagate to subqueries")
	}
}

// A chain-rooted delegation target is resolved for its address first; the
// original name is then re-queried against that address.
func TestChainRootedDelegation(t *testing.T) {
	host := &fakeHost{
		answer: func(call resolveCall) ([]resolver.Record, error) {
			if !call.Opts.Subquery && call.Domain == "ns.chainzone" && call.Qtype == resolver.TypeA {
				return []resolver.Record{{Type: resolver.TypeA, Value: "44.231.6.183"}}, nil
			}
			if call.Opts.Subquery && call.Opts.Nameserver == "44.231.6.183" {
				return []resolver.Record{{Type: resolver.TypeA, Value: "10.0.0.1"}}, nil
			}
			return nil, nil
		},
	}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "ns.chainzone"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "www.example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "10.0.0.1"}})

	if len(host.calls) != 2 {
		t.Fatalf("expected address resolution then subquery, got %+v", host.calls)
	}
	if host.calls[0].Opts.Subquery {
		t.Errorf("first call must be a plain resolve of the target, got %+v", host.calls[0])
	}
	if host.calls[1].Domain != "www.example" {
		t.Errorf("subquery must target the original domain, got %+v", host.calls[1])
	}
}

// If the chain-rooted target has no address, the NS record terminates with
// no emission.
func TestChainRootedDelegationNoAddress(t *testing.T) {
	host := &fakeHost{}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "ns.chainzone"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "www.example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("unresolvable chain-rooted delegation must yield nothing, got %+v", records)
	}
	if len(host.calls) != 1 {
		t.Errorf("expected only the target address resolution, got %+v", host.calls)
	}
}

// A HIP-5 target bypasses both the ICANN and chain-recursion branches and
// is resolved directly as an ordinary name.
func TestHIP5Passthrough(t *testing.T) {
	host := &fakeHost{
		answer: func(call resolveCall) ([]resolver.Record, error) {
			if call.Domain == "alice.eth" && !call.Opts.Subquery {
				return []resolver.Record{{Type: resolver.TypeA, Value: "3.3.3.3"}}, nil
			}
			return nil, nil
		},
	}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "alice.eth"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "www.example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "3.3.3.3"}})
}

// A caller-supplied HIP-5 extension label behaves like a built-in one.
func TestHIP5CallerExtension(t *testing.T) {
	host := &fakeHost{
		answer: func(call resolveCall) ([]resolver.Record, error) {
			if call.Domain == "bob.sol" && !call.Opts.Subquery {
				return []resolver.Record{{Type: resolver.TypeA, Value: "4.4.4.4"}}, nil
			}
			return nil, nil
		},
	}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "bob.sol"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "www.example", resolver.TypeA, resolver.Options{HIP5: []string{"sol"}}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "4.4.4.4"}})
}

// When a direct resolve of an unusable delegation target yields nothing,
// the raw target is surfaced as a last-resort NS record.
func TestLastResortNSEmission(t *testing.T) {
	host := &fakeHost{}
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {{Type: hsrpc.KindNS, NS: "123.456"}},
	}}
	r := newTestResolver(host, chain)

	records, err := r.Resolve(context.Background(), "www.example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeNS, Value: "123.456"}})
}

// Unrecognized chain record kinds are no-ops.
func TestUnknownRecordKindIgnored(t *testing.T) {
	chain := &fakeChain{records: map[string][]hsrpc.Record{
		"example": {
			{Type: "DS"},
			{Type: hsrpc.KindSynth4, Address: "1.2.3.4"},
		},
	}}
	r := newTestResolver(nil, chain)

	records, err := r.Resolve(context.Background(), "example", resolver.TypeA, resolver.Options{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRecords(t, records, []resolver.Record{{Type: resolver.TypeA, Value: "1.2.3.4"}})
}
