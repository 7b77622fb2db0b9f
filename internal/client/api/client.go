// Package api implements the HTTP request pipeline shared by every service
// call: bearer-token injection, transparent refresh-and-resend on expired
// tokens, deduplication of identical in-flight requests, short-term caching
// of read responses, and bounded retries for requests that failed without a
// response. All failures cross the package boundary as *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/config"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/repositories/credentials"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/token"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/common"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/logging"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

// Client is the configured request pipeline. It is safe for concurrent use;
// construct one per session via New.
type Client struct {
	cfg    *config.Config
	http   *http.Client
	tokens *token.Store
	creds  *credentials.Store
	log    logging.Logger

	flight    singleflight.Group // identical in-flight requests share one call
	refreshSF singleflight.Group // at most one token refresh at a time
	cache     *responseCache
}

func New(cfg *config.Config, tokens *token.Store, creds *credentials.Store, log logging.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{},
		tokens: tokens,
		creds:  creds,
		log:    log,
		cache:  newResponseCache(),
	}
}

// call is one logical request. query is only set for GETs; body is marshaled
// to JSON unless rawBody/contentType are set (multipart uploads).
type call struct {
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     []byte
	contentType string
	opts        callOptions
}

// key identifies a request for deduplication and caching. url.Values.Encode
// sorts keys and json.Marshal emits map keys sorted, so equal requests always
// produce equal keys.
func (cl *call) key() string {
	k := cl.method + " " + cl.path
	if len(cl.query) > 0 {
		k += "?" + cl.query.Encode()
	}
	if cl.body != nil {
		if b, err := json.Marshal(cl.body); err == nil {
			k += " " + string(b)
		}
	}
	return k
}

// Get performs a cacheable read. Identical concurrent Gets share one network
// call; a result fresher than the cache TTL is served without any call.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any, opts ...CallOption) error {
	return c.invoke(ctx, call{method: http.MethodGet, path: path, query: query, opts: buildOptions(opts)}, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any, opts ...CallOption) error {
	return c.invoke(ctx, call{method: http.MethodPost, path: path, body: body, opts: buildOptions(opts)}, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any, opts ...CallOption) error {
	return c.invoke(ctx, call{method: http.MethodPut, path: path, body: body, opts: buildOptions(opts)}, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, out any, opts ...CallOption) error {
	return c.invoke(ctx, call{method: http.MethodPatch, path: path, body: body, opts: buildOptions(opts)}, out)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) error {
	return c.invoke(ctx, call{method: http.MethodDelete, path: path, opts: buildOptions(opts)}, nil)
}

// InvalidateCache drops every cached response.
func (c *Client) InvalidateCache() {
	c.cache.clear()
}

// InvalidateCachePattern drops cached responses whose key contains pattern
// (e.g. a path prefix after a mutation).
func (c *Client) InvalidateCachePattern(pattern string) {
	c.cache.clearPattern(pattern)
}

func buildOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (c *Client) invoke(ctx context.Context, cl call, out any) error {
	raw, err := c.roundTrip(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindServer, Message: "malformed response body", cause: err}
	}
	return nil
}

// roundTrip applies the cache and dedup layers around execute.
func (c *Client) roundTrip(ctx context.Context, cl call) ([]byte, error) {
	key := cl.key()
	cacheable := cl.method == http.MethodGet && !cl.opts.skipCache
	ttl := cl.opts.cacheTTL
	if ttl == 0 {
		ttl = c.cfg.CacheTTL
	}

	if cacheable {
		if body, ok := c.cache.get(key, ttl); ok {
			c.log.Debug(ctx, "cache hit", "key", key)
			return body, nil
		}
	}

	// The shared execution is detached from any single caller's context so
	// that one caller canceling does not fail the others; each caller may
	// stop waiting independently below.
	execCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (any, error) {
		defer c.flight.Forget(key)
		body, err := c.execute(execCtx, cl)
		if err != nil {
			return nil, err
		}
		if cacheable {
			c.cache.set(key, body)
		}
		return body, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.log.Debug(ctx, "request deduplicated", "key", key)
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, newCanceledError(ctx.Err())
	}
}

// requestState tracks one request through the auth-recovery machine:
//
//	sent → (401) authFailed → refreshing → resent → done
//
// The refreshing step happens inside refreshSession; a request in resent
// never re-enters the machine, which bounds the resend to exactly once.
type requestState int

const (
	stateSent requestState = iota
	stateAuthFailed
	stateResent
)

// execute runs the request with transient retries and the 401 recovery path.
// It returns the response body on 2xx and a classified *Error otherwise.
func (c *Client) execute(ctx context.Context, cl call) ([]byte, error) {
	reqID := uuid.NewString()
	log := c.log.With("request_id", reqID, "method", cl.method, "path", cl.path)

	bodyBytes := cl.rawBody
	if bodyBytes == nil && cl.body != nil {
		var err error
		bodyBytes, err = json.Marshal(cl.body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: "unencodable request body", cause: err}
		}
	}

	state := stateSent
	for {
		resp, raw, sentTok, err := c.send(ctx, cl, bodyBytes, reqID)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusUnauthorized && state == stateSent && cl.path != EndpointAuthRefreshToken {
			state = stateAuthFailed
			authErr := newStatusError(resp.StatusCode, raw)

			if rerr := c.refreshSession(ctx, sentTok); rerr != nil {
				log.Warn(ctx, "token refresh failed, session cleared", "error", rerr)
				// surface the original authorization failure
				return nil, authErr
			}

			state = stateResent
			log.Debug(ctx, "token refreshed, resending request")
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return raw, nil
		}

		apiErr := newStatusError(resp.StatusCode, raw)
		if resp.StatusCode >= 500 {
			log.Error(ctx, "server error", "status", resp.StatusCode, "message", apiErr.Message)
		}
		return nil, apiErr
	}
}

// send performs the HTTP exchange with the transient-failure retry policy:
// only errors with no response at all (dial failures, timeouts) are retried,
// the initial attempt plus up to cfg.RetryAttempts retries with a fixed
// delay. Server-returned statuses are never retried here.
func (c *Client) send(ctx context.Context, cl call, body []byte, reqID string) (*http.Response, []byte, string, error) {
	var (
		resp    *http.Response
		raw     []byte
		sentTok string
	)

	retries := c.cfg.RetryAttempts
	if retries < 0 {
		retries = 0
	}
	backoff := retry.WithMaxRetries(uint64(retries), retry.NewConstant(c.cfg.RetryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, b, tok, err := c.attempt(ctx, cl, body, reqID)
		if err != nil {
			return retry.RetryableError(err)
		}
		resp, raw, sentTok = r, b, tok
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, nil, "", newCanceledError(err)
		}
		return nil, nil, "", newNetworkError(err)
	}
	return resp, raw, sentTok, nil
}

// attempt is a single exchange. The token is read from the store on every
// attempt, so a resend after refresh automatically carries the new token;
// the token actually sent is returned for the staleness check on the
// refresh path.
func (c *Client) attempt(ctx context.Context, cl call, body []byte, reqID string) (*http.Response, []byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	u := c.cfg.BaseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u, rd)
	if err != nil {
		return nil, nil, "", err
	}

	contentType := cl.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	sentTok, ok := c.tokens.Get()
	if ok {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+sentTok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, "", err
	}
	return resp, raw, sentTok, nil
}
