package diary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zenshop/diary/content"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("diary: post not found")

// Store is a SQLite index of the posts loaded from the content directory.
// Content files stay the source of truth; the index serves listings and
// tag queries.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    published TEXT NOT NULL,
    tags TEXT NOT NULL,
    body TEXT NOT NULL,
    html TEXT NOT NULL,
    source TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS posts_published ON posts (published DESC, slug);
`)
	return err
}

const postColumns = `slug, title, description, date, published, tags, body, html, source`

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (content.Post, error) {
	var p content.Post
	var published, tags string
	if err := row.Scan(&p.Slug, &p.Title, &p.Description, &p.Date, &published, &tags, &p.Body, &p.HTML, &p.Source); err != nil {
		return content.Post{}, err
	}
	p.Tags = ParseTags(tags)
	p.Published, _ = time.Parse(time.RFC3339, published)
	return p, nil
}

// ListPosts returns posts newest first. If tag is non-empty, results are
// filtered to posts carrying that tag.
func (s *Store) ListPosts(tag string) ([]content.Post, error) {
	var rows *sql.Rows
	var err error
	if tag == "" {
		rows, err = s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY published DESC, slug`)
	} else {
		rows, err = s.db.Query(`SELECT `+postColumns+` FROM posts WHERE instr(tags, ',' || ? || ',') > 0 ORDER BY published DESC, slug`, content.NormalizeTag(tag))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []content.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListTags returns a sorted, deduplicated slice of all tags.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range ParseTags(tags) {
			set[t] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

// GetPost returns a single post by slug.
func (s *Store) GetPost(slug string) (content.Post, error) {
	p, err := scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return content.Post{}, ErrNotFound
	}
	return p, err
}

// CountPosts returns the number of indexed posts.
func (s *Store) CountPosts() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func savePost(ctx context.Context, db execer, p content.Post) error {
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Description, p.Date, p.Published.UTC().Format(time.RFC3339),
		FormatTags(p.Tags), p.Body, p.HTML, p.Source)
	return err
}

// SavePost upserts a single post.
func (s *Store) SavePost(p content.Post) error {
	return savePost(context.Background(), s.db, p)
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// ReplaceAll swaps the whole index for posts in one transaction, so readers
// see either the old or the new set.
func (s *Store) ReplaceAll(ctx context.Context, posts []content.Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return err
	}
	for _, p := range posts {
		if err := savePost(ctx, tx, p); err != nil {
			return fmt.Errorf("index %s: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}

// FormatTags encodes tags as ",a,b," so a tag can be matched with instr.
func FormatTags(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = content.NormalizeTag(t); t != "" {
			normalized = append(normalized, t)
		}
	}
	if len(normalized) == 0 {
		return ","
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
