package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(slug, date string, tags ...string) *fstest.MapFile {
	src := "---\nslug: " + slug + "\ntitle: " + slug + "\ndate: " + date + "\n"
	if len(tags) > 0 {
		src += "tags:\n"
		for _, t := range tags {
			src += "  - " + t + "\n"
		}
	}
	src += "---\nBody of " + slug + "\n"
	return &fstest.MapFile{Data: []byte(src)}
}

func TestLoadSortsNewestFirst(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/a.md":       post("alpha", "2023-01-01", "go"),
		"posts/b.mdx":      post("beta", "2023-03-01", "web"),
		"posts/c.md":       post("gamma", "2023-03-01", "Go"),
		"posts/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
		".drafts/d.md":     post("delta", "2024-01-01"),
	}
	posts, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "beta", posts[0].Slug)
	assert.Equal(t, "gamma", posts[1].Slug)
	assert.Equal(t, "alpha", posts[2].Slug)

	assert.Equal(t, []string{"go", "web"}, Tags(posts))
}

func TestLoadRejectsDuplicateSlugs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": post("same", "2023-01-01"),
		"b.md": post("same", "2023-01-02"),
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestLoadReportsEveryBadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"good.md":    post("good", "2023-01-01"),
		"noslug.md":  &fstest.MapFile{Data: []byte("---\ndate: 2023-01-01\n---\n")},
		"nodate.md":  &fstest.MapFile{Data: []byte("---\nslug: nodate\n---\n")},
		"notes.html": &fstest.MapFile{Data: []byte("<p>skip</p>")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSlug)
	assert.ErrorIs(t, err, ErrMissingDate)
}

func TestLoadEmpty(t *testing.T) {
	posts, err := Load(fstest.MapFS{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}
