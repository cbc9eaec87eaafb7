package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenshop/diary"
	"github.com/zenshop/diary/content"
	"github.com/zenshop/diary/scaffold"
)

func newNewCmd() *cobra.Command {
	var (
		dir  string
		tags []string
		date string
	)
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Start a new post",
		Example: `  diary new "Shipping the helpdesk widget"
  diary new "Notes on SQLite" --tag go --tag sqlite`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if date == "" {
				date = time.Now().Format(content.DateLayout)
			}
			path, err := runNew(dir, title, date, tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", filepath.Join("content", "posts"), "directory for the new file")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag to add (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "publication date, YYYY-MM-DD (default today)")
	return cmd
}

// runNew writes a post skeleton and returns its path. Existing files are
// never overwritten.
func runNew(dir, title, date string, tags []string) (string, error) {
	slug := diary.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q has no usable characters for a slug", title)
	}
	fm := content.FrontMatter{Slug: slug, Title: title, Date: date}
	if err := fm.Validate(); err != nil {
		return "", err
	}
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = content.NormalizeTag(t); t != "" {
			normalized = append(normalized, t)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, slug+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%s already exists", path)
		}
		return "", err
	}
	err = scaffold.WritePost(f, scaffold.PostData{Slug: slug, Title: title, Date: date, Tags: normalized})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
