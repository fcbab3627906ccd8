// Package apex is a typed client for the Apex Legends status API
// (api.mozambiquehe.re): player profiles, recent games, name to UID lookup
// and map rotation.
package apex

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/samvad-hq/apex-legends-go/pkg/httpclient"
)

const (
	DefaultBaseURL     = "https://api.mozambiquehe.re"
	DefaultPlatform    = PlatformPC
	defaultHTTPTimeout = 10 * time.Second
)

// Platform selects the account platform used by name based lookups.
type Platform string

const (
	PlatformPC     Platform = "PC"
	PlatformPS4    Platform = "PS4"
	PlatformXbox   Platform = "X1"
	PlatformSwitch Platform = "SWITCH"
)

// ParsePlatform normalizes a platform name; unknown values report false.
func ParsePlatform(s string) (Platform, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "PC":
		return PlatformPC, true
	case "PS4", "PS5", "PLAYSTATION":
		return PlatformPS4, true
	case "X1", "XBOX":
		return PlatformXbox, true
	case "SWITCH":
		return PlatformSwitch, true
	default:
		return "", false
	}
}

// Waiter paces outgoing requests. *rate.Limiter satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Client fetches resources from the API. It holds configuration only, so a
// single Client is safe for concurrent use.
type Client struct {
	http         httpclient.Client
	baseURL      string
	platform     Platform
	log          Logger
	limiter      Waiter
	defaultDelay time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

// New builds a Client. Without options it talks to DefaultBaseURL on PC.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		platform:     DefaultPlatform,
		defaultDelay: DefaultRetryDelay,
		sleep:        sleepContext,
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(defaultHTTPTimeout)
	}
	c.log = ensureLogger(c.log)
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// Platform reports the platform used for name based lookups.
func (c *Client) Platform() Platform { return c.platform }

// redactURL hides the auth query parameter so URLs can be logged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has("auth") {
		q.Set("auth", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
