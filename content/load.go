package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// IsContentFile reports whether name looks like a post source file.
func IsContentFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx", ".markdown":
		return true
	}
	return false
}

// Load parses every content file below the root of fsys. Posts are returned
// newest first; equal dates fall back to slug order. All parse failures are
// reported together.
func Load(fsys fs.FS) ([]Post, error) {
	var (
		posts []Post
		errs  []error
	)
	bySlug := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsContentFile(name) {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		p, err := Parse(name, data)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if prev, ok := bySlug[p.Slug]; ok {
			errs = append(errs, fmt.Errorf("%s: %w %q (also in %s)", name, ErrDuplicateSlug, p.Slug, prev))
			return nil
		}
		bySlug[p.Slug] = name
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walk: %w", err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	Sort(posts)
	return posts, nil
}

// Sort orders posts newest first.
func Sort(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Published.Equal(posts[j].Published) {
			return posts[i].Published.After(posts[j].Published)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// Tags returns the sorted set of tags used by posts.
func Tags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[NormalizeTag(t)] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
