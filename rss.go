package diary

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenshop/diary/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Image         *rssImage `xml:"image,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category"`
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", a.buildFeed(posts))
}

func (a *App) buildFeed(posts []content.Post) rssXML {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := a.Site.AbsoluteURL(p.Link())
		item := rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			GUID:        postURL,
			Categories:  p.Tags,
		}
		if !p.Published.IsZero() {
			item.PubDate = p.Published.Format(time.RFC1123Z)
		}
		items = append(items, item)
	}
	ch := rssChannel{
		Title:       a.Site.SiteName,
		Link:        a.Site.AbsoluteURL("/"),
		Description: a.Site.SiteDescription,
		Language:    "en",
		Items:       items,
	}
	if len(items) > 0 {
		ch.LastBuildDate = items[0].PubDate
	}
	if a.Site.SiteThumbnail != "" {
		ch.Image = &rssImage{URL: a.Site.SiteThumbnail, Title: a.Site.SiteName, Link: ch.Link}
	}
	return rssXML{Version: "2.0", Channel: ch}
}

func writeXML(c echo.Context, contentType string, v any) error {
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(v)
}
