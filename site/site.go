// Package site holds the blog's identity: name, canonical URL, navigation
// and social links. The configuration is a process-wide constant read by the
// header, footer and document head.
package site

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NavItem is a single entry in the top navigation.
type NavItem struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
}

// External reports whether the entry links off-site.
func (n NavItem) External() bool {
	u, err := url.Parse(n.Href)
	return err == nil && u.IsAbs()
}

// Social maps platforms to profile URLs. Unset platforms are empty.
type Social struct {
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	YouTube   string `json:"youtube,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
}

// SocialLink is a resolved platform/URL pair for templates.
type SocialLink struct {
	Platform string
	URL      string
}

// SiteConfig describes the site as a whole.
type SiteConfig struct {
	Avatar          string    `json:"avatar,omitempty"`
	SiteURL         string    `json:"siteUrl" validate:"required,url"`
	SiteName        string    `json:"siteName" validate:"required"`
	SiteDescription string    `json:"siteDescription" validate:"required"`
	TwitterCard     string    `json:"twitterCard"`
	SiteThumbnail   string    `json:"siteThumbnail" validate:"omitempty,url"`
	Nav             []NavItem `json:"nav" validate:"dive"`
	Social          *Social   `json:"social,omitempty"`
}

var validate = validator.New()

// Validate checks the invariants every page relies on: the identity fields
// are set and every nav entry has a label and a target.
func (c SiteConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("site: invalid config: %w", err)
	}
	return nil
}

// SocialLinks returns the configured platforms in display order.
func (c SiteConfig) SocialLinks() []SocialLink {
	if c.Social == nil {
		return nil
	}
	var links []SocialLink
	for _, l := range []SocialLink{
		{Platform: "twitter", URL: c.Social.Twitter},
		{Platform: "youtube", URL: c.Social.YouTube},
		{Platform: "instagram", URL: c.Social.Instagram},
	} {
		if strings.TrimSpace(l.URL) != "" {
			links = append(links, l)
		}
	}
	return links
}

// AbsoluteURL joins p onto SiteURL, keeping any query or fragment.
// Absolute inputs are returned unchanged.
func (c SiteConfig) AbsoluteURL(p string) string {
	ref, err := url.Parse(p)
	if err != nil || ref.IsAbs() {
		return p
	}
	base, err := url.Parse(c.SiteURL)
	if err != nil {
		return p
	}
	trailing := strings.HasSuffix(ref.Path, "/") && ref.Path != "/"
	base.Path = path.Join("/", base.Path, ref.Path)
	if trailing {
		base.Path += "/"
	}
	base.RawQuery = ref.RawQuery
	base.Fragment = ref.Fragment
	return base.String()
}

// Clone returns a deep copy so the shared constant cannot be mutated
// through slices or the social pointer.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.Nav = append([]NavItem(nil), c.Nav...)
	if c.Social != nil {
		s := *c.Social
		out.Social = &s
	}
	return out
}
