package main

import (
	"context"
	"net"
	"strings"

	"github.com/hlandau/xlog"
	"github.com/miekg/dns"

	"github.com/LumeWeb/resolver-module-handshake/host"
	"github.com/LumeWeb/resolver-module-handshake/resolver"
)

var log, Log = xlog.New("hdns.hdnsd")

// Server serves resolution results over DNS.
type Server struct {
	cfg  Config
	host *host.Resolver
	hip5 []string

	udpServer *dns.Server
	tcpServer *dns.Server
}

func New(cfg *Config) (*Server, error) {
	h, err := newHost(cfg)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:  *cfg,
		host: h,
		hip5: splitList(cfg.HIP5),
	}

	mux := dns.NewServeMux()
	mux.HandleFunc(".", s.handle)

	s.udpServer = &dns.Server{Addr: cfg.Listen, Net: "udp", Handler: mux}
	s.tcpServer = &dns.Server{Addr: cfg.Listen, Net: "tcp", Handler: mux}

	return s, nil
}

func (s *Server) Start() error {
	go s.run(s.udpServer)
	go s.run(s.tcpServer)

	log.Noticef("%s listening on %s", version, s.cfg.Listen)
	return nil
}

func (s *Server) run(ds *dns.Server) {
	err := ds.ListenAndServe()
	if err != nil {
		log.Errore(err, "dns listener ", ds.Net, " exited")
	}
}

func (s *Server) Stop() error {
	s.udpServer.Shutdown()
	s.tcpServer.Shutdown()
	return nil
}

// questionType maps a DNS question type to the resolver's result type
// enum. AAAA maps to an A query with the ipv6 option set; the resolver
// carries IPv6 literals in A-typed results.
func questionType(qtype uint16) (string, resolver.Options, bool) {
	switch qtype {
	case dns.TypeA:
		return resolver.TypeA, resolver.Options{}, true
	case dns.TypeAAAA:
		return resolver.TypeA, resolver.Options{IPv6: true}, true
	case dns.TypeCNAME:
		return resolver.TypeCNAME, resolver.Options{}, true
	case dns.TypeNS:
		return resolver.TypeNS, resolver.Options{}, true
	case dns.TypeTXT:
		return resolver.TypeTXT, resolver.Options{}, true
	default:
		return "", resolver.Options{}, false
	}
}

func (s *Server) handle(rw dns.ResponseWriter, req *dns.Msg) {
	res := new(dns.Msg)
	res.SetReply(req)
	res.Authoritative = true

	if len(req.Question) != 1 {
		res.Rcode = dns.RcodeFormatError
		rw.WriteMsg(res)
		return
	}

	q := req.Question[0]

	qtype, opts, ok := questionType(q.Qtype)
	if !ok {
		res.Rcode = dns.RcodeNotImplemented
		rw.WriteMsg(res)
		return
	}

	opts.HIP5 = s.hip5
	qname := strings.TrimSuffix(q.Name, ".")

	records, err := s.host.Resolve(context.Background(), qname, qtype, opts, false)
	switch {
	case err != nil:
		log.Errore(err, "resolve ", qname)
		res.Rcode = dns.RcodeServerFailure
	case len(records) == 0:
		res.Rcode = dns.RcodeNameError
	default:
		for _, rec := range records {
			rr := toRR(q.Name, rec)
			if rr != nil {
				res.Answer = append(res.Answer, rr)
			}
		}
	}

	rw.WriteMsg(res)
}

const answerTTL = 600

// toRR converts a result record to an answer RR owned by qname. A-typed
// results holding an IPv6 literal become AAAA answers.
func toRR(qname string, rec resolver.Record) dns.RR {
	hdr := dns.RR_Header{
		Name:  qname,
		Class: dns.ClassINET,
		Ttl:   answerTTL,
	}

	switch rec.Type {
	case resolver.TypeA:
		ip := net.ParseIP(rec.Value)
		if ip == nil {
			return nil
		}
		if ip.To4() != nil {
			hdr.Rrtype = dns.TypeA
			return &dns.A{Hdr: hdr, A: ip}
		}
		hdr.Rrtype = dns.TypeAAAA
		return &dns.AAAA{Hdr: hdr, AAAA: ip}
	case resolver.TypeCNAME:
		hdr.Rrtype = dns.TypeCNAME
		return &dns.CNAME{Hdr: hdr, Target: dns.Fqdn(rec.Value)}
	case resolver.TypeNS:
		hdr.Rrtype = dns.TypeNS
		return &dns.NS{Hdr: hdr, Ns: dns.Fqdn(rec.Value)}
	case resolver.TypeTXT:
		hdr.Rrtype = dns.TypeTXT
		return &dns.TXT{Hdr: hdr, Txt: []string{rec.Value}}
	default:
		return nil
	}
}
