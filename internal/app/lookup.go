package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/samvad-hq/apex-legends-go/internal/config"
	"github.com/samvad-hq/apex-legends-go/internal/logger"
	"github.com/samvad-hq/apex-legends-go/internal/storage"
	"github.com/samvad-hq/apex-legends-go/pkg/apex"
	"github.com/samvad-hq/apex-legends-go/pkg/httpclient"
)

// Report is everything a single lookup gathers about a player.
type Report struct {
	Player      string            `json:"player"`
	Platform    string            `json:"platform"`
	Profile     *apex.Profile     `json:"profile,omitempty"`
	User        *apex.User        `json:"user,omitempty"`
	RecentGames []apex.Game       `json:"recent_games,omitempty"`
	MapRotation *apex.MapRotation `json:"map_rotation,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
	FromCache   bool              `json:"uid_from_cache"`
	FetchedAt   time.Time         `json:"fetched_at"`
}

// Lookup chains name to UID resolution with the profile, recent games and
// map rotation fetches. UIDs are cached in the configured store.
type Lookup struct {
	client     *apex.Client
	store      storage.Store
	apiKey     string
	allowRetry bool
	log        logger.Logger
}

// NewLookup builds a lookup runtime from config.
func NewLookup(cfg *config.Config, log logger.Logger) (*Lookup, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	platform, ok := apex.ParsePlatform(cfg.Platform)
	if !ok {
		return nil, fmt.Errorf("unsupported platform %q", cfg.Platform)
	}

	opts := []apex.Option{
		apex.WithHTTPClient(httpclient.NewRestyClient(cfg.RequestTimeout)),
		apex.WithPlatform(platform),
		apex.WithLogger(log),
	}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		opts = append(opts, apex.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RateLimitPerSecond > 0 {
		opts = append(opts, apex.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)))
	}

	store, err := storage.NewStore(cfg.CacheType, cfg.BBoltPath, storage.Options{
		EntryTTL:        cfg.CacheTTL,
		CleanupInterval: cfg.CacheCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.CacheType,
		"path":                     cfg.BBoltPath,
		"entry_ttl_seconds":        int(cfg.CacheTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.CacheCleanupInterval.Seconds()),
	})

	return newLookup(apex.New(opts...), store, cfg.APIKey, cfg.RetryOnRateLimit, log), nil
}

func newLookup(client *apex.Client, store storage.Store, apiKey string, allowRetry bool, log logger.Logger) *Lookup {
	if store == nil {
		store, _ = storage.NewStore("none", "", storage.Options{})
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Lookup{
		client:     client,
		store:      store,
		apiKey:     apiKey,
		allowRetry: allowRetry,
		log:        log,
	}
}

// Run resolves player and gathers the rest of the report. A failed UID
// resolution aborts; later sections fail independently and are joined.
func (l *Lookup) Run(ctx context.Context, player string) (*Report, error) {
	if l == nil || l.client == nil {
		return nil, fmt.Errorf("lookup is not initialized")
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return nil, fmt.Errorf("player name is required")
	}

	start := time.Now()
	report := &Report{
		Player:    player,
		Platform:  string(l.client.Platform()),
		Errors:    map[string]string{},
		FetchedAt: start.UTC(),
	}

	profile, cached, err := l.resolveUID(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("resolve uid for %s: %w", player, err)
	}
	report.Profile = profile
	report.FromCache = cached

	var errs []error
	record := func(section string, err error) {
		report.Errors[section] = err.Error()
		errs = append(errs, fmt.Errorf("%s: %w", section, err))
		l.log.WarnObj("lookup section failed", "section_error", map[string]any{
			"player":  player,
			"section": section,
			"kind":    apex.KindOf(err).String(),
			"error":   err.Error(),
		})
	}

	if user, err := l.client.GetUserRetry(ctx, player, l.apiKey, l.allowRetry); err != nil {
		record("user", err)
	} else {
		report.User = user
	}

	if games, err := l.client.GetRecentGamesRetry(ctx, profile.UID.String(), l.apiKey, l.allowRetry); err != nil {
		record("recent_games", err)
	} else {
		report.RecentGames = games
	}

	if rotation, err := l.client.GetMapRotationRetry(ctx, l.apiKey, l.allowRetry); err != nil {
		record("map_rotation", err)
	} else {
		report.MapRotation = rotation
	}

	if len(report.Errors) == 0 {
		report.Errors = nil
	}
	l.log.InfoObj("lookup completed", "lookup_meta", map[string]any{
		"player":         player,
		"uid":            profile.UID.String(),
		"uid_from_cache": cached,
		"failed":         len(errs),
		"elapsed_ms":     time.Since(start).Milliseconds(),
	})
	return report, errors.Join(errs...)
}

func (l *Lookup) resolveUID(ctx context.Context, player string) (*apex.Profile, bool, error) {
	platform := string(l.client.Platform())

	entry, found, err := l.store.LookupUID(platform, player)
	if err != nil {
		l.log.WarnObj("uid cache lookup failed", "cache_error", map[string]any{
			"player": player,
			"error":  err.Error(),
		})
	}
	if found {
		return &apex.Profile{Name: entry.Name, UID: apex.ID(entry.UID), PID: apex.ID(entry.PID), Avatar: entry.Avatar}, true, nil
	}

	profile, err := l.client.GetUIDFromUsernameRetry(ctx, player, l.apiKey, l.allowRetry)
	if err != nil {
		return nil, false, err
	}

	// Key by the requested name so the next lookup finds it even if the API
	// normalizes the display name.
	if err := l.store.PutUID(platform, storage.Entry{
		Name:   player,
		UID:    profile.UID.String(),
		PID:    profile.PID.String(),
		Avatar: profile.Avatar,
	}); err != nil {
		l.log.WarnObj("uid cache write failed", "cache_error", map[string]any{
			"player": player,
			"error":  err.Error(),
		})
	}
	return profile, false, nil
}

// Close releases the cache.
func (l *Lookup) Close() {
	if l == nil || l.store == nil {
		return
	}
	if err := l.store.Close(); err != nil {
		l.log.ErrorObj("storage close failed", "error", err)
	}
}
