package api

import "time"

type callOptions struct {
	skipCache bool
	cacheTTL  time.Duration // 0 means the client-wide default
}

// CallOption tunes a single call.
type CallOption func(*callOptions)

// WithSkipCache disables the read cache for this call: the response is
// fetched from the network and not stored.
func WithSkipCache() CallOption {
	return func(o *callOptions) { o.skipCache = true }
}

// WithCacheTTL overrides the freshness window for this call's cache lookup
// and store.
func WithCacheTTL(d time.Duration) CallOption {
	return func(o *callOptions) { o.cacheTTL = d }
}
