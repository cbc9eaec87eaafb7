package views

import (
	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/site"
)

// Layout wraps page content with the site header and footer.
func Layout(cfg site.SiteConfig, main templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.render(Header(cfg))
		h.open("main", "class", "mx-auto max-w-3xl px-4 py-8")
		h.render(main)
		h.close("main")
		h.render(Footer(cfg))
	})
}

// Header renders the avatar, site name and navigation.
func Header(cfg site.SiteConfig) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("header", "class", "mx-auto flex max-w-3xl items-center justify-between px-4 py-6")
		h.open("a", "href", "/", "class", "flex items-center gap-3 font-semibold")
		if cfg.Avatar != "" {
			h.open("img", "src", cfg.Avatar, "alt", cfg.SiteName, "width", "32", "height", "32", "class", "rounded-full")
		}
		h.elem("span", cfg.SiteName)
		h.close("a")
		h.open("nav")
		h.open("ul", "class", "flex gap-4")
		for _, item := range cfg.Nav {
			h.open("li")
			if item.External() {
				h.elem("a", item.Label, "href", item.Href, "class", "hover:text-accent", "rel", "noopener")
			} else {
				h.elem("a", item.Label, "href", item.Href, "class", "hover:text-accent")
			}
			h.close("li")
		}
		h.close("ul")
		h.close("nav")
		h.close("header")
	})
}

// Footer renders social links and the feed link.
func Footer(cfg site.SiteConfig) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("footer", "class", "mx-auto max-w-3xl px-4 py-8 text-sm")
		h.open("ul", "class", "flex gap-4")
		for _, l := range cfg.SocialLinks() {
			h.open("li")
			h.elem("a", socialLabel(l.Platform), "href", l.URL, "rel", "noopener noreferrer", "target", "_blank")
			h.close("li")
		}
		h.open("li")
		h.elem("a", "RSS", "href", "/feed.xml")
		h.close("li")
		h.close("ul")
		h.close("footer")
	})
}

func socialLabel(platform string) string {
	switch platform {
	case "youtube":
		return "YouTube"
	case "twitter":
		return "Twitter"
	case "instagram":
		return "Instagram"
	}
	return cases.Title(language.English).String(platform)
}

// postSummary renders one entry of a post listing.
func postSummary(h *htmlWriter, p content.Post) {
	h.open("li", "class", "py-4")
	h.open("a", "href", p.Link(), "class", "text-lg font-semibold hover:text-accent")
	h.text(p.Title)
	h.close("a")
	h.open("time", "datetime", p.Date, "class", "block text-sm")
	h.text(FormatDate(p))
	h.close("time")
	if p.Description != "" {
		h.elem("p", p.Description)
	}
	tagList(h, p.Tags, "")
	h.close("li")
}

func postList(h *htmlWriter, posts []content.Post) {
	if len(posts) == 0 {
		h.elem("p", "Nothing here yet.")
		return
	}
	h.open("ul", "class", "divide-y")
	for _, p := range posts {
		postSummary(h, p)
	}
	h.close("ul")
}

func tagList(h *htmlWriter, tags []string, active string) {
	if len(tags) == 0 {
		return
	}
	active = content.NormalizeTag(active)
	h.open("ul", "class", "flex flex-wrap gap-2")
	for _, t := range tags {
		h.open("li")
		h.elem("a", t, "href", TagURL(t), "class", TagClass(active != "" && content.NormalizeTag(t) == active))
		h.close("li")
	}
	h.close("ul")
}
