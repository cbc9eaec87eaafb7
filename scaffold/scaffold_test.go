package scaffold

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenshop/diary/content"
)

func TestWritePostParses(t *testing.T) {
	var buf bytes.Buffer
	err := WritePost(&buf, PostData{
		Slug:  "first-steps",
		Title: `First steps: "hello"`,
		Date:  "2024-05-01",
		Tags:  []string{"go", "notes"},
	})
	require.NoError(t, err)

	post, err := content.Parse("first-steps.md", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "first-steps", post.Slug)
	assert.Equal(t, `First steps: "hello"`, post.Title)
	assert.Equal(t, "2024-05-01", post.Date)
	assert.Equal(t, []string{"go", "notes"}, post.Tags)
}

func TestWritePostWithoutTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePost(&buf, PostData{Slug: "x", Title: "X", Date: "2024-05-01"}))
	assert.Contains(t, buf.String(), "tags: []")
}

func TestWritePostQuotesTags(t *testing.T) {
	var buf bytes.Buffer
	tags := []string{"#go", "&anchor", "*alias", "!tag", "c++: tips", "a, b", "x]"}
	require.NoError(t, WritePost(&buf, PostData{Slug: "tips", Title: "Tips", Date: "2024-05-01", Tags: tags}))

	post, err := content.Parse("tips.md", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"#go", "&anchor", "*alias", "!tag", "c++: tips", "a b", "x]"}, post.Tags)
}
