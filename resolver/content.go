package resolver

import "github.com/LumeWeb/resolver-module-handshake/hsrpc"

// processTXT emits the authoritative content of a TXT chain record. Only
// the last entry of the sequence is content; earlier entries are
// superseded.
func processTXT(rec *hsrpc.Record, qtype string) []Record {
	if qtype != TypeTXT || len(rec.TXT) == 0 {
		return nil
	}

	return []Record{{Type: TypeTXT, Value: rec.TXT[len(rec.TXT)-1]}}
}

// processSynth emits an address synthesized directly from the queried
// name. Synthesized IPv6 addresses ride in A-typed results and are only
// emitted when the caller opted in via the ipv6 option.
func processSynth(rec *hsrpc.Record, qtype string, opts Options) []Record {
	if qtype != TypeA {
		return nil
	}

	if rec.Type == hsrpc.KindSynth6 && !opts.IPv6 {
		return nil
	}

	return []Record{{Type: TypeA, Value: rec.Address}}
}
