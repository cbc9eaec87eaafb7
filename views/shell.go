package views

import (
	"strings"

	"github.com/a-h/templ"
)

// HelpdeskURL is the support widget loaded on every page.
const HelpdeskURL = "https://helpdesk.zenshop.app/bundle.js?helpdeskId=kHyvy8MMAXxqFDfdED85AgEds-PYvGZZozh062MeyFO5VR0H5A=="

// BodyClass styles the page background in light and dark mode.
var BodyClass = Cx(
	"bg-material-light text-gray-800",
	"dark:bg-material-dark dark:text-gray-50",
)

// Shell renders the outer html/head/body scaffold around a page.
type Shell interface {
	Document(props DocumentProps) templ.Component
}

// DefaultShell is the site's document. An empty HelpdeskURL falls back to
// the package constant.
type DefaultShell struct {
	HelpdeskURL string
}

// colorSchemeScript sets the dark class from the OS preference before
// first paint and follows later changes.
const colorSchemeScript = `(function(){var m=window.matchMedia("(prefers-color-scheme: dark)");function a(){document.documentElement.classList.toggle("dark",m.matches)}a();m.addEventListener("change",a)})();`

func (s DefaultShell) Document(p DocumentProps) templ.Component {
	helpdesk := s.HelpdeskURL
	if helpdesk == "" {
		helpdesk = HelpdeskURL
	}
	return component(func(h *htmlWriter) {
		cfg := p.Site
		meta := p.Meta
		title := cfg.SiteName
		if meta.Title != "" && meta.Title != cfg.SiteName {
			title = meta.Title + " | " + cfg.SiteName
		}
		description := meta.Description
		if description == "" {
			description = cfg.SiteDescription
		}
		canonical := meta.URL
		if canonical == "" {
			canonical = cfg.AbsoluteURL("/")
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		image := meta.Image
		if image == "" {
			image = cfg.SiteThumbnail
		}

		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "en")
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.elem("title", title)
		h.open("meta", "name", "description", "content", description)
		h.open("link", "rel", "canonical", "href", canonical)
		h.open("meta", "property", "og:site_name", "content", cfg.SiteName)
		h.open("meta", "property", "og:title", "content", title)
		h.open("meta", "property", "og:description", "content", description)
		h.open("meta", "property", "og:url", "content", canonical)
		h.open("meta", "property", "og:type", "content", ogType)
		if image != "" {
			h.open("meta", "property", "og:image", "content", image)
			h.open("meta", "name", "twitter:image", "content", image)
		}
		if cfg.TwitterCard != "" {
			h.open("meta", "name", "twitter:card", "content", cfg.TwitterCard)
		}
		h.open("meta", "name", "twitter:title", "content", title)
		h.open("meta", "name", "twitter:description", "content", description)
		if cfg.Avatar != "" {
			h.open("link", "rel", "icon", "href", cfg.Avatar)
		}
		h.open("link", "rel", "alternate", "type", "application/rss+xml", "title", cfg.SiteName, "href", "/feed.xml")
		for _, href := range p.Stylesheets {
			h.open("link", "rel", "stylesheet", "href", href)
		}
		h.raw("<script>" + colorSchemeScript + "</script>")
		if meta.JSONLD != "" {
			h.raw(`<script type="application/ld+json">` + meta.JSONLD + "</script>")
		}
		h.raw("</head>")
		h.open("body", "class", BodyClass)
		h.render(p.Body)
		h.open("script", "async", "", "src", helpdesk)
		h.close("script")
		h.raw("</body></html>")
	})
}

// Cx joins class lists, skipping empty entries.
func Cx(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
