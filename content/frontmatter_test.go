package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontMatterValidate(t *testing.T) {
	tests := []struct {
		name string
		fm   FrontMatter
		want error
	}{
		{"complete", FrontMatter{Slug: "hello", Title: "Hello", Date: "2023-04-01"}, nil},
		{"rfc3339 date", FrontMatter{Slug: "hello", Date: "2023-04-01T10:00:00Z"}, nil},
		{"missing slug", FrontMatter{Title: "Hello", Date: "2023-04-01"}, ErrMissingSlug},
		{"blank slug", FrontMatter{Slug: "  ", Date: "2023-04-01"}, ErrMissingSlug},
		{"missing date", FrontMatter{Slug: "hello"}, ErrMissingDate},
		{"bad date", FrontMatter{Slug: "hello", Date: "April 1st"}, ErrInvalidDate},
		{"impossible date", FrontMatter{Slug: "hello", Date: "2023-02-30"}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fm.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestFrontMatterNormalize(t *testing.T) {
	fm := FrontMatter{
		Slug:  " hello ",
		Title: " Hello ",
		Date:  "2023-04-01 ",
		Tags:  []string{"Go", " go", "", "Web "},
	}.normalize()
	assert.Equal(t, "hello", fm.Slug)
	assert.Equal(t, "Hello", fm.Title)
	assert.Equal(t, "2023-04-01", fm.Date)
	assert.Equal(t, []string{"go", "web"}, fm.Tags)
}

func TestParse(t *testing.T) {
	src := "---\nslug: first-entry\ntitle: First entry\ndescription: Setting things up\ndate: 2023-04-01\ntags: [Go, web]\n---\n\n# Hello\n\nSome *text* and <script>alert(1)</script>.\n"
	p, err := Parse("posts/first.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "first-entry", p.Slug)
	assert.Equal(t, "First entry", p.Title)
	assert.Equal(t, "Setting things up", p.Description)
	assert.Equal(t, "2023-04-01", p.Date)
	assert.Equal(t, []string{"go", "web"}, p.Tags)
	assert.Equal(t, "posts/first.md", p.Source)
	assert.Equal(t, 2023, p.Published.Year())
	assert.Equal(t, "/posts/first-entry/", p.Link())
	assert.True(t, p.HasTag("GO"))
	assert.False(t, p.HasTag("rust"))

	assert.Contains(t, p.HTML, `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, p.HTML, "<em>text</em>")
	assert.NotContains(t, p.HTML, "<script>")
}

func TestParseRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no slug", "---\ntitle: x\ndate: 2023-01-01\n---\nbody", ErrMissingSlug},
		{"no date", "---\nslug: x\ntitle: x\n---\nbody", ErrMissingDate},
		{"no block", "# just markdown", ErrNoFrontMatter},
		{"unterminated block", "---\nslug: x\n", ErrNoFrontMatter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("x.md", []byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "x.md")
		})
	}
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse("bad.md", []byte("---\nslug: [unclosed\n---\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse front matter")
}

func TestParseTitleFallsBackToSlug(t *testing.T) {
	p, err := Parse("x.md", []byte("---\nslug: untitled\ndate: 2023-01-01\n---\n"))
	require.NoError(t, err)
	assert.Equal(t, "untitled", p.Title)
}

func TestSplitFrontMatterCRLF(t *testing.T) {
	fm, body, ok := splitFrontMatter("\ufeff---\r\nslug: a\r\n---\r\nbody\r\n")
	require.True(t, ok)
	assert.Equal(t, "slug: a", fm)
	assert.Equal(t, "body\n", body)
}

func TestNormalizeTagDropsCommas(t *testing.T) {
	assert.Equal(t, "ab", NormalizeTag(" A,B "))
	assert.Equal(t, "", NormalizeTag(","))

	fm := FrontMatter{Slug: "x", Date: "2024-01-01", Tags: []string{"a,b", ",", "ab"}}.normalize()
	assert.Equal(t, []string{"ab"}, fm.Tags)
}
