package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/site"
)

// homeLimit is the number of posts listed on the front page.
const homeLimit = 5

func Home(cfg site.SiteConfig, posts []content.Post, tags []string) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		h.open("section", "class", "mb-8")
		h.elem("h1", cfg.SiteName, "class", "text-3xl font-bold")
		h.elem("p", cfg.SiteDescription)
		h.close("section")
		h.elem("h2", "Latest posts", "class", "text-xl font-semibold")
		latest := posts
		if len(latest) > homeLimit {
			latest = latest[:homeLimit]
		}
		postList(h, latest)
		if len(posts) > homeLimit {
			h.elem("a", "All posts", "href", "/posts/", "class", "text-accent")
		}
		tagList(h, tags, "")
	}))
}

func PostList(cfg site.SiteConfig, posts []content.Post, activeTag string, tags []string) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		heading := "Posts"
		if activeTag != "" {
			heading = "Posts tagged “" + activeTag + "”"
		}
		h.elem("h1", heading, "class", "text-3xl font-bold")
		tagList(h, tags, activeTag)
		postList(h, posts)
	}))
}

func PostPage(cfg site.SiteConfig, post content.Post, related []content.Post) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		h.open("article")
		h.open("header", "class", "mb-6")
		h.elem("h1", post.Title, "class", "text-3xl font-bold")
		h.open("time", "datetime", post.Date, "class", "text-sm")
		h.text(FormatDate(post))
		h.close("time")
		tagList(h, post.Tags, "")
		h.close("header")
		h.open("div", "class", "prose dark:prose-invert max-w-none")
		h.render(templ.Raw(post.HTML))
		h.close("div")
		h.close("article")
		if len(related) > 0 {
			h.open("aside", "class", "mt-12")
			h.elem("h2", "Related posts", "class", "text-xl font-semibold")
			postList(h, related)
			h.close("aside")
		}
	}))
}

func NotFound(cfg site.SiteConfig) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		h.elem("h1", "Page not found", "class", "text-3xl font-bold")
		h.open("p")
		h.text("The page you were looking for does not exist. ")
		h.elem("a", "Back to posts", "href", "/posts/", "class", "text-accent")
		h.close("p")
	}))
}

func ServerError(cfg site.SiteConfig) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		h.elem("h1", "Something went wrong", "class", "text-3xl font-bold")
		h.elem("p", "Please try again in a moment.")
	}))
}

func AdminLogin(cfg site.SiteConfig, showError bool, csrfToken string) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		h.elem("h1", "Admin", "class", "text-2xl font-bold")
		if showError {
			h.elem("p", "Wrong password.", "class", "text-red-600", "role", "alert")
		}
		h.open("form", "method", "post", "action", "/admin/login/")
		h.open("input", "type", "hidden", "name", "_csrf", "value", csrfToken)
		h.open("label", "for", "password")
		h.text("Password")
		h.close("label")
		h.open("input", "type", "password", "id", "password", "name", "password", "required", "", "autocomplete", "current-password")
		h.elem("button", "Sign in", "type", "submit")
		h.close("form")
	}))
}

func AdminDashboard(cfg site.SiteConfig, posts []content.Post, status AdminStatus, msg, csrfToken string) templ.Component {
	return Layout(cfg, component(func(h *htmlWriter) {
		h.elem("h1", "Dashboard", "class", "text-2xl font-bold")
		if msg != "" {
			h.elem("p", msg, "role", "status")
		}
		h.open("dl", "class", "grid grid-cols-2 gap-2")
		h.elem("dt", "Posts")
		h.elem("dd", strconv.Itoa(status.Posts))
		h.elem("dt", "Tags")
		h.elem("dd", strconv.Itoa(status.Tags))
		h.elem("dt", "Last indexed")
		if status.LastIndexed.IsZero() {
			h.elem("dd", "never")
		} else {
			h.elem("dd", status.LastIndexed.Format("2006-01-02 15:04:05 MST"))
		}
		if status.LastError != "" {
			h.elem("dt", "Last error")
			h.elem("dd", status.LastError, "class", "text-red-600")
		}
		h.close("dl")

		h.open("form", "method", "post", "action", "/admin/reindex/")
		h.open("input", "type", "hidden", "name", "_csrf", "value", csrfToken)
		h.elem("button", "Reindex content", "type", "submit")
		h.close("form")
		h.open("form", "method", "post", "action", "/admin/logout/")
		h.open("input", "type", "hidden", "name", "_csrf", "value", csrfToken)
		h.elem("button", "Sign out", "type", "submit")
		h.close("form")

		h.open("table", "class", "w-full")
		h.raw("<thead><tr><th>Title</th><th>Slug</th><th>Date</th><th>Source</th></tr></thead>")
		h.raw("<tbody>")
		for _, p := range posts {
			h.raw("<tr>")
			h.open("td")
			h.elem("a", p.Title, "href", p.Link())
			h.close("td")
			h.elem("td", p.Slug)
			h.elem("td", p.Date)
			h.elem("td", p.Source)
			h.raw("</tr>")
		}
		h.raw("</tbody>")
		h.close("table")
	}))
}
