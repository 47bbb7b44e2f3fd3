// Package dnsclient performs one-shot DNS queries against an explicitly
// specified nameserver, as used for delegated (nameserver-scoped) lookups.
package dnsclient

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
	"gopkg.in/hlandau/madns.v2/merr"

	"github.com/LumeWeb/resolver-module-handshake/resolver"
)

const defaultTimeout = 5 * time.Second

// Client exchanges single DNS questions with explicit nameservers. The
// zero value is usable.
type Client struct {
	// Dialer used for exchanges. If nil, a plain net.Dialer is used.
	Dialer proxy.ContextDialer

	// Per-query timeout. If zero, a default of 5s is used.
	Timeout time.Duration
}

func (c *Client) dialer() proxy.ContextDialer {
	if c.Dialer != nil {
		return c.Dialer
	}

	return &net.Dialer{}
}

// Query exchanges a single question with the given nameserver. The
// nameserver may be an IP or a hostname; port 53 is assumed unless one is
// given. UDP is tried first, with a TCP retry on truncation.
func (c *Client) Query(ctx context.Context, qname string, qtype uint16, nameserver string) (*dns.Msg, error) {
	hostport := nameserver
	if _, _, err := net.SplitHostPort(nameserver); err != nil {
		hostport = net.JoinHostPort(strings.TrimSuffix(nameserver, "."), "53")
	}

	req := new(dns.Msg)
	req.Id = dns.Id()
	req.RecursionDesired = true
	req.Question = []dns.Question{{
		Name:   dns.Fqdn(qname),
		Qtype:  qtype,
		Qclass: dns.ClassINET,
	}}

	res, err := c.exchange(ctx, req, "udp", hostport)
	if err == nil && res.Truncated {
		res, err = c.exchange(ctx, req, "tcp", hostport)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "dns exchange with %s", hostport)
	}

	return res, nil
}

func (c *Client) exchange(ctx context.Context, req *dns.Msg, network, hostport string) (*dns.Msg, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := c.dialer().DialContext(ctx, network, hostport)
	if err != nil {
		return nil, err
	}

	dc := &dns.Conn{Conn: conn}
	defer dc.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	err = dc.WriteMsg(req)
	if err != nil {
		return nil, err
	}

	res, err := dc.ReadMsg()
	if err != nil {
		return nil, err
	}
	if res.Id != req.Id {
		return nil, dns.ErrId
	}

	return res, nil
}

// Lookup runs Query and converts the answer section to result records.
// NXDOMAIN is reported as merr.ErrNoSuchDomain; other non-success rcodes
// are plain errors.
func (c *Client) Lookup(ctx context.Context, qname string, qtype uint16, nameserver string) ([]resolver.Record, error) {
	res, err := c.Query(ctx, qname, qtype, nameserver)
	if err != nil {
		return nil, err
	}

	switch res.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, merr.ErrNoSuchDomain
	default:
		return nil, errors.Errorf("dns query for %s via %s failed: %s", qname, nameserver, dns.RcodeToString[res.Rcode])
	}

	var out []resolver.Record
	for _, rr := range res.Answer {
		if rec, ok := FromRR(rr); ok {
			out = append(out, rec)
		}
	}

	return out, nil
}

// FromRR converts a DNS resource record to a result record. AAAA answers
// surface as A-typed results, matching the result type enum. Record types
// outside the result enum are skipped.
func FromRR(rr dns.RR) (resolver.Record, bool) {
	switch rr := rr.(type) {
	case *dns.A:
		return resolver.Record{Type: resolver.TypeA, Value: rr.A.String()}, true
	case *dns.AAAA:
		return resolver.Record{Type: resolver.TypeA, Value: rr.AAAA.String()}, true
	case *dns.CNAME:
		return resolver.Record{Type: resolver.TypeCNAME, Value: strings.TrimSuffix(rr.Target, ".")}, true
	case *dns.NS:
		return resolver.Record{Type: resolver.TypeNS, Value: strings.TrimSuffix(rr.Ns, ".")}, true
	case *dns.TXT:
		return resolver.Record{Type: resolver.TypeTXT, Value: strings.Join(rr.Txt, "")}, true
	default:
		return resolver.Record{}, false
	}
}
