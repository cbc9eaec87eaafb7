// Package scaffold provides the embedded templates used by `diary new`.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// PostData holds the variables passed to the post template.
type PostData struct {
	Slug  string
	Title string
	Date  string
	Tags  []string
}

var postTmpl = template.Must(template.ParseFS(Templates, "templates/post.md.tmpl"))

// WritePost renders a new post skeleton to w.
func WritePost(w io.Writer, data PostData) error {
	if err := postTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute post template: %w", err)
	}
	return nil
}
