// Package diary serves a developer-diary blog built with Go, Echo, and templ.
// Posts are markdown files with YAML front matter; they are indexed into
// SQLite and rendered inside a shared document shell.
//
// Pages are plain templ components collected in views.ViewFuncs, and the
// outer html/head/body scaffold is a views.Shell, so both can be replaced
// through Options without touching handler logic.
package diary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/site"
	"github.com/zenshop/diary/theme"
	"github.com/zenshop/diary/views"
)

// App is the central diary application. It wires together the store,
// cache, indexer, handlers, middleware and views.
type App struct {
	Config  Config
	Site    site.SiteConfig
	Theme   theme.Config
	Echo    *echo.Echo
	Store   *Store
	Cache   *PostCache
	Indexer *Indexer
	Views   views.ViewFuncs
	Shell   views.Shell

	loginLimiter *LoginLimiter
	avatar       avatarCache
	contentFS    fs.FS
	watchDir     string
	stylesheets  []string
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Site:   site.Default(),
		Theme:  theme.Default(),
		Echo:   echo.New(),
		Views:  views.Defaults(),
		Shell:  views.DefaultShell{HelpdeskURL: cfg.HelpdeskURL},
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init validates configuration, opens the index, loads content and
// registers middleware and routes. Start calls it when needed; tests call
// it directly and drive a.Echo with httptest.
func (a *App) Init(ctx context.Context) error {
	if a.initialized {
		return nil
	}
	if err := a.Site.Validate(); err != nil {
		return fmt.Errorf("diary: %w", err)
	}
	if a.Config.AdminPassword != "" && a.Config.SessionSecret == "" {
		return errors.New("diary: DIARY_SESSION_SECRET is required when an admin password is set")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("diary: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)

	fsys := a.contentFS
	if fsys == nil {
		fsys, a.watchDir = a.resolveContent()
	}
	a.Indexer = NewIndexer(fsys, a.Store, a.Cache, a.Echo.Logger)
	if err := a.Indexer.Reindex(ctx); err != nil {
		// Serve what the index already holds; the error shows on the dashboard.
		a.Echo.Logger.Warnf("serving previous index: %v", err)
	}

	a.stylesheets = []string{"/theme.css"}
	if _, err := os.Stat(a.Config.StaticDir + "/styles.css"); err == nil {
		a.stylesheets = append(a.stylesheets, "/public/styles.css")
	}

	if a.Config.AdminEnabled() {
		a.loginLimiter = NewLoginLimiter(5, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// resolveContent picks the content directory when it exists and falls back
// to the bundled sample posts otherwise.
func (a *App) resolveContent() (fs.FS, string) {
	if info, err := os.Stat(a.Config.ContentDir); err == nil && info.IsDir() {
		return os.DirFS(a.Config.ContentDir), a.Config.ContentDir
	}
	a.Echo.Logger.Warnf("content dir %q not found, serving bundled posts", a.Config.ContentDir)
	sub, _ := fs.Sub(EmbeddedContent, "embedded/content")
	return sub, ""
}

// Start initializes the app and serves until ctx is cancelled. When the
// content directory is watched, edits are reindexed while serving.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})
	if a.Config.Watch && a.watchDir != "" {
		w, err := content.NewWatcher(a.watchDir, a.Config.WatchDebounce,
			func() { _ = a.Indexer.Reindex(ctx) },
			func(err error) { a.Echo.Logger.Warnf("content watcher: %v", err) },
		)
		if err != nil {
			a.Echo.Logger.Warnf("content watcher disabled: %v", err)
		} else {
			a.Echo.Logger.Infof("watching %s for changes", a.watchDir)
			g.Go(func() error { return w.Run(ctx) })
		}
	}
	return g.Wait()
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/theme.css", a.handleThemeCSS)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	if localAvatar(a.Site.Avatar) {
		e.GET(a.Site.Avatar, a.handleAvatar)
	}

	e.GET("/", a.handleHome)
	e.GET("/posts/", a.handlePostList)
	e.GET("/posts/:slug/", a.handlePost)
	e.GET("/tags/:tag/", handleTagRedirect)
	e.GET("/blog/", handleBlogRedirect)

	if a.Config.AdminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.POST("/admin/reindex/", a.handleAdminReindex)
	}
}
