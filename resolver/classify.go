package resolver

import "github.com/LumeWeb/resolver-module-handshake/hsrpc"

// RecordSet is a chain record set partitioned by kind. Order within each
// class follows the published order.
type RecordSet struct {
	NS    []hsrpc.Record
	Glue  []hsrpc.Record
	TXT   []hsrpc.Record
	Synth []hsrpc.Record
}

// Classify partitions a published record set by kind. Records of unknown
// kinds are dropped.
func Classify(set []hsrpc.Record) *RecordSet {
	rs := &RecordSet{}

	for _, rec := range set {
		switch {
		case rec.Type == hsrpc.KindNS:
			rs.NS = append(rs.NS, rec)
		case rec.IsGlue():
			rs.Glue = append(rs.Glue, rec)
		case rec.Type == hsrpc.KindTXT:
			rs.TXT = append(rs.TXT, rec)
		case rec.IsSynth():
			rs.Synth = append(rs.Synth, rec)
		}
	}

	return rs
}

// findGlue returns the first glue record bound to the given NS target, or
// nil. The pairing is by shared ns value over the whole record set; glue
// is not assumed adjacent to its NS record.
func findGlue(set []hsrpc.Record, ns string) *hsrpc.Record {
	for i := range set {
		if set[i].IsGlue() && set[i].NS == ns {
			return &set[i]
		}
	}

	return nil
}
