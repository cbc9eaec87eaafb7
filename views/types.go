package views

import (
	"time"

	"github.com/a-h/templ"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/site"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, defaults to the site thumbnail
	JSONLD      string
}

// DocumentProps is everything the shell needs to render one page.
type DocumentProps struct {
	Site        site.SiteConfig
	Meta        PageMeta
	Body        templ.Component
	Stylesheets []string
}

// AdminStatus summarizes the content index for the dashboard.
type AdminStatus struct {
	Posts       int
	Tags        int
	LastIndexed time.Time
	LastError   string
}

// ViewFuncs holds the page components the server renders inside the
// document shell. Any field can be replaced to customize a page.
type ViewFuncs struct {
	Home           func(cfg site.SiteConfig, posts []content.Post, tags []string) templ.Component
	PostList       func(cfg site.SiteConfig, posts []content.Post, activeTag string, tags []string) templ.Component
	Post           func(cfg site.SiteConfig, post content.Post, related []content.Post) templ.Component
	NotFound       func(cfg site.SiteConfig) templ.Component
	ServerError    func(cfg site.SiteConfig) templ.Component
	AdminLogin     func(cfg site.SiteConfig, showError bool, csrfToken string) templ.Component
	AdminDashboard func(cfg site.SiteConfig, posts []content.Post, status AdminStatus, msg, csrfToken string) templ.Component
}

// Defaults returns the built-in page components.
func Defaults() ViewFuncs {
	return ViewFuncs{
		Home:           Home,
		PostList:       PostList,
		Post:           PostPage,
		NotFound:       NotFound,
		ServerError:    ServerError,
		AdminLogin:     AdminLogin,
		AdminDashboard: AdminDashboard,
	}
}

// Merge fills unset fields of v from Defaults.
func (v ViewFuncs) Merge() ViewFuncs {
	d := Defaults()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.PostList == nil {
		v.PostList = d.PostList
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	if v.AdminLogin == nil {
		v.AdminLogin = d.AdminLogin
	}
	if v.AdminDashboard == nil {
		v.AdminDashboard = d.AdminDashboard
	}
	return v
}
