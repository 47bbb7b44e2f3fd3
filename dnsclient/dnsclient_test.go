package dnsclient_test

import (
	"net"
	"testing"

	"github.com/miekg/dns"

	"github.com/LumeWeb/resolver-module-handshake/dnsclient"
	"github.com/LumeWeb/resolver-module-handshake/resolver"
)

func TestFromRR(t *testing.T) {
	hdr := func(rrtype uint16) dns.RR_Header {
		return dns.RR_Header{Name: "example.com.", Rrtype: rrtype, Class: dns.ClassINET, Ttl: 600}
	}

	cases := []struct {
		rr       dns.RR
		expected resolver.Record
		ok       bool
	}{
		{&dns.A{Hdr: hdr(dns.TypeA), A: net.ParseIP("1.2.3.4")}, resolver.Record{Type: resolver.TypeA, Value: "1.2.3.4"}, true},
		{&dns.AAAA{Hdr: hdr(dns.TypeAAAA), AAAA: net.ParseIP("2001:db8::1")}, resolver.Record{Type: resolver.TypeA, Value: "2001:db8::1"}, true},
		{&dns.CNAME{Hdr: hdr(dns.TypeCNAME), Target: "target.example.com."}, resolver.Record{Type: resolver.TypeCNAME, Value: "target.example.com"}, true},
		{&dns.NS{Hdr: hdr(dns.TypeNS), Ns: "ns1.example.com."}, resolver.Record{Type: resolver.TypeNS, Value: "ns1.example.com"}, true},
		{&dns.TXT{Hdr: hdr(dns.TypeTXT), Txt: []string{"hello ", "world"}}, resolver.Record{Type: resolver.TypeTXT, Value: "hello world"}, true},
		{&dns.MX{Hdr: hdr(dns.TypeMX), Mx: "mx.example.com."}, resolver.Record{}, false},
	}

	for _, c := range cases {
		rec, ok := dnsclient.FromRR(c.rr)
		if ok != c.ok || rec != c.expected {
			t.Errorf("FromRR(%s) = (%+v, %v), want (%+v, %v)", c.rr.String(), rec, ok, c.expected, c.ok)
		}
	}
}
