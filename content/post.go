package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// Post is a parsed content file.
type Post struct {
	FrontMatter
	Source    string    // file the post was read from
	Body      string    // markdown after the front matter block
	HTML      string    // sanitized rendering of Body
	Published time.Time // parsed Date
}

// Link returns the site-relative URL of the post.
func (p Post) Link() string {
	return "/posts/" + p.Slug + "/"
}

// HasTag reports whether the post carries tag (case-insensitive).
func (p Post) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range p.Tags {
		if NormalizeTag(t) == tag {
			return true
		}
	}
	return false
}

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span")
	p.AllowAttrs("loading").OnElements("img")
	p.RequireNoFollowOnLinks(false)
	return p
}

// Parse reads a content file. name is used in error messages and as Source.
func Parse(name string, data []byte) (Post, error) {
	fm, body, ok := splitFrontMatter(string(data))
	if !ok {
		return Post{}, fmt.Errorf("%s: %w", name, ErrNoFrontMatter)
	}
	var front FrontMatter
	if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
		return Post{}, fmt.Errorf("%s: parse front matter: %w", name, err)
	}
	front = front.normalize()
	if err := front.Validate(); err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}
	published, _ := front.ParsedDate()
	if front.Title == "" {
		front.Title = front.Slug
	}

	html, err := RenderMarkdown(body)
	if err != nil {
		return Post{}, fmt.Errorf("%s: render markdown: %w", name, err)
	}
	return Post{
		FrontMatter: front,
		Source:      name,
		Body:        body,
		HTML:        html,
		Published:   published,
	}, nil
}

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}

// splitFrontMatter separates a leading --- delimited block from the body.
func splitFrontMatter(input string) (string, string, bool) {
	input = strings.TrimPrefix(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n"), true
		}
	}
	return "", input, false
}
