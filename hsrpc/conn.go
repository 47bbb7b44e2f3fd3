// Package hsrpc implements the JSON-RPC client used to fetch published
// record sets from the chain node, including the record set cache that
// bypassCache controls.
package hsrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/golang/groupcache/lru"
	"github.com/hlandau/xlog"
	"github.com/pkg/errors"
)

var log, Log = xlog.New("hdns.hsrpc")

// GetNameResourceCmd is the getnameresource JSON-RPC command. The single
// positional parameter is the top-level name to look up.
type GetNameResourceCmd struct {
	Name string
}

func init() {
	btcjson.MustRegisterCmd("getnameresource", (*GetNameResourceCmd)(nil), btcjson.UsageFlag(0))
}

const defaultTimeout = 1500 * time.Millisecond
const defaultCacheMaxEntries = 100

// Conn represents a connection configuration to the chain node's JSON-RPC
// interface. The zero value with Server set is usable.
type Conn struct {
	// hostname:port of the JSON-RPC interface.
	Server string

	Username string
	Password string

	// If set, used to obtain credentials instead of Username/Password.
	// See NewCookieRetriever.
	GetAuth func() (username, password string, err error)

	// Per-request timeout. If zero, a default of 1500ms is used.
	Timeout time.Duration

	// Maximum record sets to keep cached. If zero, a default is used.
	CacheMaxEntries int

	idCounter uint64

	clientOnce sync.Once
	client     *http.Client

	cacheOnce  sync.Once
	cacheMutex sync.Mutex
	cache      lru.Cache // values are []Record
}

// NameResource fetches the record set published for the given top-level
// name, consulting the cache unless bypassCache is set. A fetch always
// refreshes the cache entry. A name with no published resource yields a
// nil record set and no error.
func (c *Conn) NameResource(ctx context.Context, name string, bypassCache bool) ([]Record, error) {
	if !bypassCache {
		if records, ok := c.cacheGet(name); ok {
			return records, nil
		}
	}

	raw, err := c.call(ctx, &GetNameResourceCmd{Name: name})
	if err != nil {
		return nil, err
	}

	records, err := ParseNameResource(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed record set for %q", name)
	}

	log.Debugf("chain query (%s) yielded %d records", name, len(records))

	c.cacheAdd(name, records)
	return records, nil
}

func (c *Conn) cacheGet(name string) ([]Record, bool) {
	c.cacheInit()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	if v, ok := c.cache.Get(name); ok {
		return v.([]Record), true
	}

	return nil, false
}

func (c *Conn) cacheAdd(name string, records []Record) {
	c.cacheInit()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	c.cache.Add(name, records)
}

func (c *Conn) cacheInit() {
	c.cacheOnce.Do(func() {
		c.cache.MaxEntries = c.CacheMaxEntries
		if c.cache.MaxEntries == 0 {
			c.cache.MaxEntries = defaultCacheMaxEntries
		}
	})
}

func (c *Conn) auth() (username, password string, err error) {
	if c.GetAuth != nil {
		return c.GetAuth()
	}

	return c.Username, c.Password, nil
}

func (c *Conn) httpClient() *http.Client {
	c.clientOnce.Do(func() {
		timeout := c.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}

		c.client = &http.Client{Timeout: timeout}
	})

	return c.client
}

// call marshals cmd as a JSON-RPC request, posts it and returns the raw
// result. A JSON-RPC level error is returned as a *btcjson.RPCError.
func (c *Conn) call(ctx context.Context, cmd interface{}) (json.RawMessage, error) {
	id := atomic.AddUint64(&c.idCounter, 1)

	body, err := btcjson.MarshalCmd(btcjson.RpcVersion1, id, cmd)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal chain RPC command")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://"+c.Server, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create chain RPC request")
	}

	username, password, err := c.auth()
	if err != nil {
		return nil, errors.Wrap(err, "cannot obtain chain RPC credentials")
	}

	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/json")

	httpRes, err := c.httpClient().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "chain RPC request to %s failed", c.Server)
	}

	defer httpRes.Body.Close()

	resBody, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read chain RPC response")
	}

	res := &btcjson.Response{}
	err = json.Unmarshal(resBody, res)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed chain RPC response (HTTP %d)", httpRes.StatusCode)
	}

	if res.Error != nil {
		return nil, res.Error
	}

	return res.Result, nil
}
