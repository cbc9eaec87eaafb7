// Package content loads blog posts from markdown files with a YAML front
// matter block and validates their metadata.
package content

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingSlug   = errors.New("content: front matter is missing slug")
	ErrMissingDate   = errors.New("content: front matter is missing date")
	ErrInvalidDate   = errors.New("content: front matter date is not a calendar date")
	ErrDuplicateSlug = errors.New("content: duplicate slug")
	ErrNoFrontMatter = errors.New("content: file has no front matter block")
)

// DateLayout is the canonical front matter date format.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04",
	"2006/01/02",
}

// FrontMatter is the metadata block at the top of every post.
type FrontMatter struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Date        string   `yaml:"date" json:"date"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Validate rejects front matter without a slug or with a missing or
// unparseable date.
func (f FrontMatter) Validate() error {
	if strings.TrimSpace(f.Slug) == "" {
		return ErrMissingSlug
	}
	if strings.TrimSpace(f.Date) == "" {
		return ErrMissingDate
	}
	if _, err := f.ParsedDate(); err != nil {
		return err
	}
	return nil
}

// ParsedDate parses Date with the accepted layouts.
func (f FrontMatter) ParsedDate() (time.Time, error) {
	v := strings.TrimSpace(f.Date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// normalize trims fields and lowercases tags, dropping empties and repeats.
func (f FrontMatter) normalize() FrontMatter {
	f.Slug = strings.TrimSpace(f.Slug)
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Date = strings.TrimSpace(f.Date)
	var tags []string
	seen := make(map[string]struct{}, len(f.Tags))
	for _, t := range f.Tags {
		t = NormalizeTag(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	f.Tags = tags
	return f
}

// NormalizeTag lowercases and trims a tag for comparison and storage.
// Commas are dropped since the index stores tags comma-delimited.
func NormalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(t, ",", "")))
}
