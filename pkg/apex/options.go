package apex

import (
	"time"

	"github.com/samvad-hq/apex-legends-go/pkg/httpclient"
)

type Option func(*Client)

func WithHTTPClient(h httpclient.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithPlatform(p Platform) Option {
	return func(c *Client) {
		if p != "" {
			c.platform = p
		}
	}
}

func WithLogger(l Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithLimiter makes every request wait on w before it is sent.
func WithLimiter(w Waiter) Option {
	return func(c *Client) { c.limiter = w }
}

// WithDefaultRetryDelay overrides the delay used when a 429 carries no usable rate hint.
func WithDefaultRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.defaultDelay = d
		}
	}
}
