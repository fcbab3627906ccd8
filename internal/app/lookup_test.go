package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/samvad-hq/apex-legends-go/internal/config"
	"github.com/samvad-hq/apex-legends-go/internal/storage"
	"github.com/samvad-hq/apex-legends-go/pkg/apex"
)

const (
	profileBody  = `{"name":"ExampleUser","uid":"123","pid":"456","avatar":""}`
	userBody     = `{"global":{"name":"ExampleUser","uid":123,"level":100},"realtime":{},"total":{"kills":{"name":"BR Kills","value":5}}}`
	gamesBody    = `[{"uid":"123","legendPlayed":"Wraith","gameMode":"BATTLE_ROYALE"}]`
	rotationBody = `{"battle_royale":{"current":{"map":"Olympus"},"next":{"map":"Kings Canyon"}},"arenas":{},"ranked":{},"arenasRanked":{}}`
)

// fakeAPI serves fixed bodies per path and counts hits.
type fakeAPI struct {
	mu     sync.Mutex
	hits   map[string]int
	status map[string]int
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{hits: map[string]int{}, status: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		status := f.status[r.URL.Path]
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		switch r.URL.Path {
		case "/nametouid":
			_, _ = w.Write([]byte(profileBody))
		case "/bridge":
			_, _ = w.Write([]byte(userBody))
		case "/games":
			if r.URL.Query().Get("uid") != "123" {
				t.Errorf("games requested for unexpected uid %q", r.URL.Query().Get("uid"))
			}
			_, _ = w.Write([]byte(gamesBody))
		case "/maprotation":
			_, _ = w.Write([]byte(rotationBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func TestLookupRunGathersAllSections(t *testing.T) {
	api, srv := newFakeAPI(t)
	l := newLookup(apex.New(apex.WithBaseURL(srv.URL)), nil, "k", false, nil)

	report, err := l.Run(context.Background(), "ExampleUser")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Profile == nil || report.Profile.UID != "123" {
		t.Fatalf("unexpected profile %+v", report.Profile)
	}
	if report.User == nil || report.User.Global.Level != 100 {
		t.Fatalf("unexpected user %+v", report.User)
	}
	if len(report.RecentGames) != 1 || report.RecentGames[0].LegendPlayed != "Wraith" {
		t.Fatalf("unexpected games %+v", report.RecentGames)
	}
	if report.MapRotation == nil || report.MapRotation.BattleRoyale.Current.Map != "Olympus" {
		t.Fatalf("unexpected rotation %+v", report.MapRotation)
	}
	if report.Errors != nil {
		t.Fatalf("expected no section errors, got %v", report.Errors)
	}
	if report.Platform != "PC" {
		t.Fatalf("unexpected platform %q", report.Platform)
	}
	if api.count("/nametouid") != 1 {
		t.Fatalf("expected one uid lookup")
	}
}

func TestLookupUsesUIDCache(t *testing.T) {
	api, srv := newFakeAPI(t)
	store, err := storage.NewStore("bbolt", filepath.Join(t.TempDir(), "uids.db"), storage.Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	l := newLookup(apex.New(apex.WithBaseURL(srv.URL)), store, "k", false, nil)
	defer l.Close()

	first, err := l.Run(context.Background(), "ExampleUser")
	if err != nil || first.FromCache {
		t.Fatalf("first run: cached=%v err=%v", first != nil && first.FromCache, err)
	}
	second, err := l.Run(context.Background(), "exampleuser")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.FromCache || second.Profile.UID != "123" {
		t.Fatalf("expected cached uid, got %+v", second.Profile)
	}
	if api.count("/nametouid") != 1 {
		t.Fatalf("expected uid endpoint hit once, got %d", api.count("/nametouid"))
	}
	if api.count("/bridge") != 2 {
		t.Fatalf("profile must not be cached, got %d hits", api.count("/bridge"))
	}
}

func TestLookupJoinsSectionErrors(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.status["/games"] = http.StatusUnauthorized
	api.status["/maprotation"] = http.StatusInternalServerError

	l := newLookup(apex.New(apex.WithBaseURL(srv.URL)), nil, "k", false, nil)
	report, err := l.Run(context.Background(), "ExampleUser")
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if report == nil || report.User == nil {
		t.Fatalf("expected partial report with user, got %+v", report)
	}
	if report.Errors["recent_games"] != "invalid API key" {
		t.Fatalf("unexpected games error %q", report.Errors["recent_games"])
	}
	if report.Errors["map_rotation"] != "upstream server error" {
		t.Fatalf("unexpected rotation error %q", report.Errors["map_rotation"])
	}
	if !strings.Contains(err.Error(), "recent_games: invalid API key") {
		t.Fatalf("unexpected joined error %v", err)
	}
}

func TestLookupAbortsWhenUIDUnresolved(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.status["/nametouid"] = http.StatusNotFound

	l := newLookup(apex.New(apex.WithBaseURL(srv.URL)), nil, "k", false, nil)
	if _, err := l.Run(context.Background(), "ghost"); err == nil || !strings.Contains(err.Error(), "resource not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if api.count("/bridge") != 0 {
		t.Fatalf("profile must not be fetched without a uid")
	}
}

func TestLookupRejectsEmptyPlayer(t *testing.T) {
	l := newLookup(apex.New(), nil, "k", false, nil)
	if _, err := l.Run(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty player")
	}
}

func TestNewLookupFromConfig(t *testing.T) {
	cfg := &config.Config{
		APIKey:               "k",
		Platform:             "switch",
		CacheType:            "none",
		RateLimitPerSecond:   5,
		RateLimitBurst:       1,
		CacheTTL:             1,
		CacheCleanupInterval: 1,
	}
	l, err := NewLookup(cfg, nil)
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	defer l.Close()
	if l.client.Platform() != apex.PlatformSwitch {
		t.Fatalf("unexpected platform %q", l.client.Platform())
	}

	cfg.Platform = "dreamcast"
	if _, err := NewLookup(cfg, nil); err == nil {
		t.Fatalf("expected error for unsupported platform")
	}
}
