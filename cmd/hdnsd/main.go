package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hlandau/buildinfo"
	"gopkg.in/hlandau/service.v2"
	"gopkg.in/hlandau/easyconfig.v1"

	"github.com/LumeWeb/resolver-module-handshake/dnsclient"
	"github.com/LumeWeb/resolver-module-handshake/host"
	"github.com/LumeWeb/resolver-module-handshake/hsrpc"
	"github.com/LumeWeb/resolver-module-handshake/resolver"
)

// Config is hdnsd's configuration.
type Config struct {
	RPCAddress      string `default:"127.0.0.1:12037" usage:"Chain node RPC server address"`
	RPCUsername     string `default:"" usage:"Chain node RPC username"`
	RPCPassword     string `default:"" usage:"Chain node RPC password"`
	RPCCookiePath   string `default:"" usage:"Chain node RPC cookie path (if set, used instead of password)"`
	RPCTimeout      int    `default:"1500" usage:"Timeout (in milliseconds) for chain RPC requests"`
	CacheMaxEntries int    `default:"100" usage:"Maximum record set cache entries"`
	Listen          string `default:"127.0.0.1:5350" usage:"DNS listen address (UDP and TCP)"`
	Fallback        string `default:"" usage:"Recursive nameserver for ICANN-rooted names (host:port; empty disables)"`
	HIP5            string `default:"" usage:"Extra HIP-5 extension labels (comma-separated)"`
}

var version string

func main() {
	version = buildinfo.VersionSummary("github.com/LumeWeb/resolver-module-handshake", "hdnsd")

	cfg := Config{}
	config := easyconfig.Configurator{
		ProgramName: "hdnsd",
	}
	config.ParseFatal(&cfg)

	service.Main(&service.Info{
		Name:          "hdnsd",
		Description:   "Handshake chain to DNS daemon",
		DefaultChroot: service.EmptyChrootPath,
		RunFunc: func(smgr service.Manager) error {
			s, err := New(&cfg)
			if err != nil {
				return err
			}

			err = s.Start()
			if err != nil {
				return err
			}

			err = smgr.DropPrivileges()
			if err != nil {
				return err
			}

			smgr.SetStarted()
			smgr.SetStatus("hdnsd: running ok")

			<-smgr.StopChan()

			return s.Stop()
		},
	})
}

// newHost wires the chain backend and DNS client into a host resolver
// according to cfg.
func newHost(cfg *Config) (*host.Resolver, error) {
	if cfg.RPCAddress == "" {
		return nil, fmt.Errorf("an RPC address must be specified")
	}

	conn := &hsrpc.Conn{
		Server:          cfg.RPCAddress,
		Username:        cfg.RPCUsername,
		Password:        cfg.RPCPassword,
		Timeout:         time.Duration(cfg.RPCTimeout) * time.Millisecond,
		CacheMaxEntries: cfg.CacheMaxEntries,
	}

	if cfg.RPCCookiePath != "" {
		conn.GetAuth = hsrpc.NewCookieRetriever(cfg.RPCCookiePath)
	}

	h := &host.Resolver{
		DNS:      &dnsclient.Client{},
		Fallback: cfg.Fallback,
	}

	h.Register(resolver.NewBackend(resolver.New(h, conn)))

	return h, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

