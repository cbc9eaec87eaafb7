package views

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/site"
)

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border border-gray-800/20 dark:border-gray-50/30 px-2 py-0.5 text-xs uppercase tracking-wide"
	if active {
		return Cx(base, "bg-accent text-gray-50")
	}
	return base
}

// TagURL returns the listing URL for tag.
func TagURL(tag string) string {
	return "/posts/?tag=" + url.QueryEscape(tag)
}

// FormatDate renders a post date for display, falling back to the raw value.
func FormatDate(p content.Post) string {
	if p.Published.IsZero() {
		return p.Date
	}
	return p.Published.Format("January 2, 2006")
}

// RelatedPosts returns other posts that share at least one tag with current.
func RelatedPosts(current content.Post, posts []content.Post, limit int) []content.Post {
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		if t = content.NormalizeTag(t); t != "" {
			tagSet[t] = struct{}{}
		}
	}
	var related []content.Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[content.NormalizeTag(t)]; ok {
				related = append(related, p)
				break
			}
		}
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related
}

// WebsiteJsonLD produces a Schema.org WebSite block for the site.
func WebsiteJsonLD(cfg site.SiteConfig) string {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.SiteName,
		"url":         cfg.AbsoluteURL("/"),
		"description": cfg.SiteDescription,
	}
	if links := cfg.SocialLinks(); len(links) > 0 {
		sameAs := make([]string, len(links))
		for i, l := range links {
			sameAs[i] = l.URL
		}
		data["sameAs"] = sameAs
	}
	return marshalJsonLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting block for a post.
func BlogPostingJsonLD(cfg site.SiteConfig, post content.Post) string {
	postURL := cfg.AbsoluteURL(post.Link())
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.SiteName,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Description != "" {
		data["description"] = post.Description
	}
	if cfg.SiteThumbnail != "" {
		data["image"] = cfg.SiteThumbnail
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
