package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/common"
)

// refreshRequest is the body of the refresh-token endpoint.
type refreshRequest struct {
	Token string `json:"token"`
}

// refreshSession coordinates the single-flight token refresh. Any number of
// requests failing with 401 concurrently trigger at most one refresh call;
// all of them resume only once that call settles. staleToken is the token the
// failing request was sent with: if the store already holds a different one,
// another request finished the refresh first and no network call is made.
// A caller may stop waiting (its context ends) without canceling the shared
// refresh other requests are awaiting.
func (c *Client) refreshSession(ctx context.Context, staleToken string) error {
	ch := c.refreshSF.DoChan("refresh", func() (any, error) {
		defer c.refreshSF.Forget("refresh")
		return nil, c.doRefresh(context.WithoutCancel(ctx), staleToken)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// doRefresh reads the persisted refresh token, exchanges it for a new token
// pair, and installs the result in the token store and credential store. Any
// failure, whether a missing token, a network error, or a server rejection,
// wipes the whole session so the app falls back to explicit
// re-authentication.
func (c *Client) doRefresh(ctx context.Context, staleToken string) error {
	if cur, ok := c.tokens.Get(); ok && cur != staleToken {
		// already refreshed while this request was in flight
		return nil
	}
	rt, ok := c.creds.RefreshToken(ctx)
	if !ok {
		c.ClearSession(ctx)
		return common.ErrNoRefreshToken
	}

	raw, err := c.execute(ctx, call{
		method: http.MethodPost,
		path:   EndpointAuthRefreshToken,
		body:   refreshRequest{Token: rt},
	})
	if err != nil {
		c.ClearSession(ctx)
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized {
			// the server rejected the refresh token itself
			return fmt.Errorf("%w: %w", common.ErrTokenExpired, err)
		}
		return err
	}

	var payload models.AuthPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.ClearSession(ctx)
		return &Error{Kind: KindServer, Message: "malformed refresh response", cause: err}
	}

	c.tokens.Set(payload.AccessToken)
	c.creds.SaveAuth(ctx, payload.RefreshToken, &payload.User)
	c.log.Info(ctx, "access token refreshed")
	return nil
}

// Refresh forces a token refresh now, regardless of whether the current
// access token has been rejected yet. Concurrent callers share one call.
func (c *Client) Refresh(ctx context.Context) error {
	cur, _ := c.tokens.Get()
	return c.refreshSession(ctx, cur)
}

// RestoreSession resumes a persisted session at startup. With an access token
// already in memory there is nothing to do; otherwise a stored refresh token
// is exchanged for a fresh pair. Returns whether a session is active. Failure
// is silent: the refresh path has already wiped the stores, and the app
// simply starts signed out.
func (c *Client) RestoreSession(ctx context.Context) bool {
	if _, ok := c.tokens.Get(); ok {
		return true
	}
	if _, ok := c.creds.RefreshToken(ctx); !ok {
		return false
	}
	if err := c.refreshSession(ctx, ""); err != nil {
		c.log.Warn(ctx, "session restore failed", "error", err)
		return false
	}
	return true
}

// ClearSession drops the in-memory access token and every persisted
// credential. Used by the refresh failure path and by logout.
func (c *Client) ClearSession(ctx context.Context) {
	c.tokens.Clear()
	c.creds.Clear(ctx)
}
