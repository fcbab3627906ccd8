package apex

import (
	"context"
	"time"

	"github.com/samvad-hq/apex-legends-go/pkg/httpclient"
)

// GetUser fetches the profile and stats of player on the client's platform.
func (c *Client) GetUser(ctx context.Context, player, apiKey string) (*User, error) {
	return c.GetUserRetry(ctx, player, apiKey, false)
}

// GetUserRetry is GetUser with one optional retry after a rate-limit response.
func (c *Client) GetUserRetry(ctx context.Context, player, apiKey string, allowRetry bool) (*User, error) {
	var out User
	if err := c.fetch(ctx, c.userEndpoint(player, apiKey), &out, allowRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecentGames fetches the tracked match history for uid.
func (c *Client) GetRecentGames(ctx context.Context, uid, apiKey string) ([]Game, error) {
	return c.GetRecentGamesRetry(ctx, uid, apiKey, false)
}

func (c *Client) GetRecentGamesRetry(ctx context.Context, uid, apiKey string, allowRetry bool) ([]Game, error) {
	var out []Game
	if err := c.fetch(ctx, c.gamesEndpoint(uid, apiKey), &out, allowRetry); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Game{}
	}
	return out, nil
}

// GetUIDFromUsername resolves player to its account UID.
func (c *Client) GetUIDFromUsername(ctx context.Context, player, apiKey string) (*Profile, error) {
	return c.GetUIDFromUsernameRetry(ctx, player, apiKey, false)
}

func (c *Client) GetUIDFromUsernameRetry(ctx context.Context, player, apiKey string, allowRetry bool) (*Profile, error) {
	var out Profile
	if err := c.fetch(ctx, c.nameToUIDEndpoint(player, apiKey), &out, allowRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMapRotation fetches the current and next map for each mode.
func (c *Client) GetMapRotation(ctx context.Context, apiKey string) (*MapRotation, error) {
	return c.GetMapRotationRetry(ctx, apiKey, false)
}

func (c *Client) GetMapRotationRetry(ctx context.Context, apiKey string, allowRetry bool) (*MapRotation, error) {
	var out MapRotation
	if err := c.fetch(ctx, c.mapRotationEndpoint(apiKey), &out, allowRetry); err != nil {
		return nil, err
	}
	return &out, nil
}

// fetch runs one request and, when allowed, a single retry after a 429.
func (c *Client) fetch(ctx context.Context, ep endpoint, out any, allowRetry bool) error {
	state := attemptInitial
	for {
		err := c.fetchOnce(ctx, ep, out)
		apiErr, retry := shouldRetry(err, allowRetry, state)
		if !retry {
			return err
		}

		c.log.WarnObj("rate limited, retrying once", "rate_limit", map[string]any{
			"resource":    ep.name,
			"retry_after": apiErr.RetryAfter.String(),
		})
		if err := c.sleep(ctx, apiErr.RetryAfter); err != nil {
			return err
		}
		state = attemptRetried
	}
}

func (c *Client) fetchOnce(ctx context.Context, ep endpoint, out any) error {
	u, err := c.buildURL(ep)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindTransport, Err: err}
		}
	}

	start := time.Now()
	body, err := httpclient.Fetch(ctx, c.http, u, nil)
	if err != nil {
		apiErr := classify(err, c.defaultDelay)
		c.log.DebugObj("api request failed", "request", map[string]any{
			"resource":   ep.name,
			"url":        redactURL(u),
			"kind":       apiErr.Kind.String(),
			"status":     apiErr.StatusCode,
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return apiErr
	}

	c.log.DebugObj("api request completed", "request", map[string]any{
		"resource":   ep.name,
		"url":        redactURL(u),
		"bytes":      len(body),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return decodeBody(body, out, ep.required)
}
