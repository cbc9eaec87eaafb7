package diary

import (
	"encoding/xml"

	"github.com/labstack/echo/v4"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return writeXML(c, "application/xml; charset=utf-8", a.buildSitemap(posts, tags))
}

func (a *App) buildSitemap(posts []content.Post, tags []string) sitemapURLSet {
	latest := ""
	if len(posts) > 0 {
		latest = posts[0].Date
	}
	urls := []sitemapURL{
		{Loc: a.Site.AbsoluteURL("/"), LastMod: latest},
		{Loc: a.Site.AbsoluteURL("/posts/"), LastMod: latest},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     a.Site.AbsoluteURL(p.Link()),
			LastMod: p.Date,
		})
	}
	for _, t := range tags {
		urls = append(urls, sitemapURL{Loc: a.Site.AbsoluteURL(views.TagURL(t))})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}
