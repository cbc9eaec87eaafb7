package diary

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/views"
)

// relatedLimit caps the related-posts list under an article.
const relatedLimit = 3

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	meta := views.PageMeta{
		Title:  a.Site.SiteName,
		URL:    a.Site.AbsoluteURL("/"),
		JSONLD: views.WebsiteJsonLD(a.Site),
	}
	return a.page(c, http.StatusOK, meta, a.Views.Home(a.Site, posts, tags))
}

func (a *App) handlePostList(c echo.Context) error {
	tag := content.NormalizeTag(c.QueryParam("tag"))
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	meta := views.PageMeta{Title: "Posts", URL: a.Site.AbsoluteURL("/posts/")}
	if tag != "" {
		meta.Title = fmt.Sprintf("Posts tagged %s", tag)
		meta.URL += "?tag=" + url.QueryEscape(tag)
	}
	return a.page(c, http.StatusOK, meta, a.Views.PostList(a.Site, posts, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	meta := views.PageMeta{
		Title:       post.Title,
		Description: post.Description,
		URL:         a.Site.AbsoluteURL(post.Link()),
		OGType:      "article",
		JSONLD:      views.BlogPostingJsonLD(a.Site, post),
	}
	related := views.RelatedPosts(post, posts, relatedLimit)
	return a.page(c, http.StatusOK, meta, a.Views.Post(a.Site, post, related))
}

func handleTagRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, views.TagURL(c.Param("tag")))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/posts/")
}

func (a *App) handleThemeCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(a.Theme.CSS()))
}

// handleRobots generates robots.txt pointing crawlers at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n", a.Site.AbsoluteURL("/sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.page(c, http.StatusNotFound, views.PageMeta{Title: "Not found"}, a.Views.NotFound(a.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = a.page(c, code, views.PageMeta{Title: "Error"}, a.Views.ServerError(a.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
