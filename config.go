package diary

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/zenshop/diary/site"
	"github.com/zenshop/diary/theme"
	"github.com/zenshop/diary/views"
)

// Config holds the server's runtime settings. Site identity lives in the
// site package; this is everything an operator can change per deployment.
type Config struct {
	Addr         string `env:"DIARY_ADDR" envDefault:":3000"`
	DatabasePath string `env:"DIARY_DATABASE_PATH" envDefault:"data/diary.db"`
	ContentDir   string `env:"DIARY_CONTENT_DIR" envDefault:"content"`
	StaticDir    string `env:"DIARY_STATIC_DIR" envDefault:"public"`

	// Admin routes are registered only when both are set.
	AdminPassword string `env:"DIARY_ADMIN_PASSWORD"`
	SessionSecret string `env:"DIARY_SESSION_SECRET"`
	CookieSecure  bool   `env:"DIARY_COOKIE_SECURE"`

	PostCacheTTL  time.Duration `env:"DIARY_POST_CACHE_TTL" envDefault:"5m"`
	Watch         bool          `env:"DIARY_WATCH" envDefault:"true"`
	WatchDebounce time.Duration `env:"DIARY_WATCH_DEBOUNCE" envDefault:"300ms"`
	HelpdeskURL   string        `env:"DIARY_HELPDESK_URL"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("diary: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/diary.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.WatchDebounce == 0 {
		c.WatchDebounce = 300 * time.Millisecond
	}
	if c.HelpdeskURL == "" {
		c.HelpdeskURL = views.HelpdeskURL
	}
}

// AdminEnabled reports whether the admin dashboard is configured.
func (c Config) AdminEnabled() bool {
	return strings.TrimSpace(c.AdminPassword) != "" && strings.TrimSpace(c.SessionSecret) != ""
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSite replaces the site configuration.
func WithSite(cfg site.SiteConfig) Option {
	return func(a *App) {
		a.Site = cfg
	}
}

// WithTheme replaces the theme served at /theme.css.
func WithTheme(t theme.Config) Option {
	return func(a *App) {
		a.Theme = t
	}
}

// WithViews overrides page components. Unset fields keep the defaults.
func WithViews(v views.ViewFuncs) Option {
	return func(a *App) {
		a.Views = v.Merge()
	}
}

// WithShell replaces the document shell.
func WithShell(s views.Shell) Option {
	return func(a *App) {
		a.Shell = s
	}
}

// WithContentFS reads posts from fsys instead of Config.ContentDir.
// The directory watcher is disabled in that case.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
