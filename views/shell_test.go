package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/site"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func renderDocument(t *testing.T, props DocumentProps) *html.Node {
	t.Helper()
	return parse(t, renderString(t, DefaultShell{}.Document(props)))
}

func TestDocumentStructure(t *testing.T) {
	doc := renderDocument(t, DocumentProps{
		Site: site.Default(),
		Body: templ.Raw(`<p id="page">hello</p>`),
	})

	htmls := findAll(doc, "html")
	require.Len(t, htmls, 1)
	lang, _ := attr(htmls[0], "lang")
	assert.Equal(t, "en", lang)

	bodies := findAll(doc, "body")
	require.Len(t, bodies, 1)
	class, _ := attr(bodies[0], "class")
	classes := strings.Fields(class)
	assert.Contains(t, classes, "bg-material-light")
	assert.Contains(t, classes, "dark:bg-material-dark")
	assert.Contains(t, classes, "text-gray-800")
	assert.Contains(t, classes, "dark:text-gray-50")

	var external []*html.Node
	for _, s := range findAll(doc, "script") {
		if _, ok := attr(s, "src"); ok {
			external = append(external, s)
		}
	}
	require.Len(t, external, 1)
	src, _ := attr(external[0], "src")
	assert.Equal(t, HelpdeskURL, src)
	_, async := attr(external[0], "async")
	assert.True(t, async)
	assert.Equal(t, "body", external[0].Parent.Data)

	require.Len(t, findAll(doc, "p"), 1)
}

func TestDocumentHeadMeta(t *testing.T) {
	cfg := site.Default()
	out := renderString(t, DefaultShell{}.Document(DocumentProps{
		Site: cfg,
		Meta: PageMeta{
			Title:       "Hello <world>",
			Description: "An entry",
			URL:         "https://diary.zenshop.app/posts/hello/",
			OGType:      "article",
			JSONLD:      `{"@type":"BlogPosting"}`,
		},
		Stylesheets: []string{"/theme.css"},
	}))
	assert.Contains(t, out, "<title>Hello &lt;world&gt; | zenshop</title>")
	assert.Contains(t, out, `<meta name="twitter:card" content="summary_large_image">`)
	assert.Contains(t, out, `<meta property="og:image" content="`+cfg.SiteThumbnail+`">`)
	assert.Contains(t, out, `<link rel="canonical" href="https://diary.zenshop.app/posts/hello/">`)
	assert.Contains(t, out, `<meta property="og:type" content="article">`)
	assert.Contains(t, out, `<link rel="stylesheet" href="/theme.css">`)
	assert.Contains(t, out, `<script type="application/ld+json">{"@type":"BlogPosting"}</script>`)
}

func TestDocumentDefaults(t *testing.T) {
	cfg := site.Default()
	out := renderString(t, DefaultShell{}.Document(DocumentProps{Site: cfg}))
	assert.Contains(t, out, "<title>zenshop</title>")
	assert.Contains(t, out, `content="Developer diary | zenshop"`)
	assert.Contains(t, out, `<meta property="og:type" content="website">`)
}

func TestDocumentCustomHelpdesk(t *testing.T) {
	out := renderString(t, DefaultShell{HelpdeskURL: "https://example.com/w.js"}.Document(DocumentProps{Site: site.Default()}))
	assert.Contains(t, out, `src="https://example.com/w.js"`)
	assert.NotContains(t, out, HelpdeskURL)
}

func TestCx(t *testing.T) {
	assert.Equal(t, "a b", Cx("a", "", "  ", "b"))
	assert.Equal(t, "", Cx())
	assert.Equal(t, "bg-material-light text-gray-800 dark:bg-material-dark dark:text-gray-50", BodyClass)
}

func TestHeaderNav(t *testing.T) {
	doc := parse(t, renderString(t, Header(site.Default())))
	links := findAll(doc, "a")
	var hrefs []string
	for _, a := range links {
		href, _ := attr(a, "href")
		hrefs = append(hrefs, href)
	}
	assert.Equal(t, []string{"/", "/posts", "https://www.zenshop.app/about"}, hrefs)
}

func TestFooterSocial(t *testing.T) {
	out := renderString(t, Footer(site.Default()))
	assert.Contains(t, out, ">Twitter</a>")
	assert.Contains(t, out, ">YouTube</a>")
	assert.Contains(t, out, ">Instagram</a>")
	assert.Contains(t, out, `href="/feed.xml"`)
}

func TestPostPageEscapesMetadata(t *testing.T) {
	p := content.Post{
		FrontMatter: content.FrontMatter{Slug: "x", Title: "<b>x</b>", Date: "2023-01-01"},
		HTML:        "<p>body</p>",
	}
	out := renderString(t, PostPage(site.Default(), p, nil))
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, out, "<p>body</p>")
}

func TestPostListActiveTagIgnoresCase(t *testing.T) {
	out := renderString(t, PostList(site.Default(), nil, "Go", []string{"go", "web"}))
	assert.Equal(t, 1, strings.Count(out, "bg-accent"))

	out = renderString(t, PostList(site.Default(), nil, "", []string{"go", "web"}))
	assert.NotContains(t, out, "bg-accent")
}

func TestColorSchemeScriptFollowsPreference(t *testing.T) {
	out := renderString(t, DefaultShell{}.Document(DocumentProps{Site: site.Default(), Body: templ.NopComponent}))
	assert.Contains(t, out, "prefers-color-scheme: dark")
	assert.NotContains(t, out, "localStorage")
}
