package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kr/pretty"

	"github.com/LumeWeb/resolver-module-handshake/dnsclient"
	"github.com/LumeWeb/resolver-module-handshake/host"
	"github.com/LumeWeb/resolver-module-handshake/hsrpc"
	"github.com/LumeWeb/resolver-module-handshake/resolver"
	"github.com/LumeWeb/resolver-module-handshake/util"
)

var rpchost = flag.String("rpchost", "127.0.0.1:12037", "Chain node RPC host:port")
var rpcuser = flag.String("rpcuser", "", "Chain node RPC username")
var rpcpass = flag.String("rpcpass", "", "Chain node RPC password")
var rpccookie = flag.String("rpccookie", "", "Chain node RPC cookie path")
var qtype = flag.String("type", "", "Resolve the name for this record type (A, CNAME, NS, TXT) instead of dumping the record set")
var ipv6 = flag.Bool("ipv6", false, "Also emit synthesized IPv6 addresses for A queries")
var hip5 = flag.String("hip5", "", "Extra HIP-5 extension labels (comma-separated)")
var fallback = flag.String("fallback", "", "Recursive nameserver for ICANN-rooted names (host:port)")
var nocache = flag.Bool("nocache", false, "Bypass the record set cache")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hdnsq [options] <name>\n")
	fmt.Fprintf(os.Stderr, "Dumps the chain record set for the name's top-level label, or resolves\n")
	fmt.Fprintf(os.Stderr, "the name when -type is given.\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.CommandLine.Usage = usage
	flag.Parse()
	args := flag.Args()

	if len(args) != 1 {
		usage()
	}

	name := args[0]

	conn := &hsrpc.Conn{
		Server:   *rpchost,
		Username: *rpcuser,
		Password: *rpcpass,
	}
	if *rpccookie != "" {
		conn.GetAuth = hsrpc.NewCookieRetriever(*rpccookie)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *qtype == "" {
		dump(ctx, conn, name)
		return
	}

	resolve(ctx, conn, name)
}

func dump(ctx context.Context, conn *hsrpc.Conn, name string) {
	tld := util.TopLevel(name)

	set, err := conn.NameResource(ctx, tld, *nocache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot fetch record set for %s: %v\n", tld, err)
		os.Exit(1)
	}

	if len(set) == 0 {
		fmt.Printf("no records published for %s\n", tld)
		return
	}

	pretty.Println(resolver.Classify(set))
}

func resolve(ctx context.Context, conn *hsrpc.Conn, name string) {
	rt := strings.ToUpper(*qtype)
	if _, ok := host.WireType(rt); !ok {
		fmt.Fprintf(os.Stderr, "unsupported record type: %s\n", *qtype)
		os.Exit(2)
	}

	h := &host.Resolver{
		DNS:      &dnsclient.Client{},
		Fallback: *fallback,
	}
	h.Register(resolver.NewBackend(resolver.New(h, conn)))

	opts := resolver.Options{IPv6: *ipv6}
	for _, ext := range strings.Split(*hip5, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			opts.HIP5 = append(opts.HIP5, ext)
		}
	}

	records, err := h.Resolve(ctx, name, rt, opts, *nocache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot resolve %s: %v\n", name, err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Printf("no %s records for %s\n", rt, name)
		os.Exit(1)
	}

	for _, rec := range records {
		fmt.Printf("%s\t%s\n", rec.Type, rec.Value)
	}
}
