package resolver

import "context"

// Backend adapts a Resolver into a host resolver module.
type Backend struct {
	r *Resolver
}

func NewBackend(r *Resolver) *Backend {
	return &Backend{r: r}
}

func (b *Backend) Name() string {
	return "hns"
}

// SupportedTLDs returns nil: the chain namespace is open-ended, so this
// backend does not claim a fixed label set and contributes nothing to
// sibling blacklists.
func (b *Backend) SupportedTLDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (b *Backend) Resolve(ctx context.Context, domain, qtype string, opts Options, bypassCache bool) ([]Record, error) {
	return b.r.Resolve(ctx, domain, qtype, opts, bypassCache)
}
