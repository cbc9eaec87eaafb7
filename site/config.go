package site

var config = SiteConfig{
	Avatar:          "/avatar.png",
	SiteURL:         "https://diary.zenshop.app",
	SiteName:        "zenshop",
	SiteDescription: "Developer diary | zenshop",
	TwitterCard:     "summary_large_image",
	SiteThumbnail:   "https://www.zenshop.app/images/landing/twitter-card.png",
	Nav: []NavItem{
		{Label: "Posts", Href: "/posts"},
		{Label: "About", Href: "https://www.zenshop.app/about"},
	},
	Social: &Social{
		YouTube:   "https://www.youtube.com/channel/UCNSNRGSutFKcB9L-2AFabdA",
		Twitter:   "https://twitter.com/zenshop_app",
		Instagram: "https://www.instagram.com/zenshop_app",
	},
}

// Default returns a copy of the site configuration.
func Default() SiteConfig {
	return config.Clone()
}
