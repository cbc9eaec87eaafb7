package diary

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenshop/diary/content"
)

// IndexStatus describes the outcome of the most recent reindex.
type IndexStatus struct {
	Posts int
	Tags  int
	At    time.Time
	Err   error
}

// Indexer loads posts from a content tree into the Store. A failed load
// leaves the previous index in place.
type Indexer struct {
	mu     sync.Mutex
	fsys   fs.FS
	store  *Store
	cache  *PostCache
	logger echo.Logger
	status IndexStatus
}

// NewIndexer creates an Indexer reading from fsys.
func NewIndexer(fsys fs.FS, store *Store, cache *PostCache, logger echo.Logger) *Indexer {
	return &Indexer{fsys: fsys, store: store, cache: cache, logger: logger}
}

// Reindex reloads every post. Concurrent calls are serialized.
func (ix *Indexer) Reindex(ctx context.Context) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	start := time.Now()
	posts, err := content.Load(ix.fsys)
	if err == nil {
		err = ix.store.ReplaceAll(ctx, posts)
	}
	if err != nil {
		ix.status.Err = err
		ix.status.At = time.Now()
		ix.logger.Errorf("reindex failed: %v", err)
		return fmt.Errorf("diary: reindex: %w", err)
	}
	ix.cache.Invalidate()
	ix.status = IndexStatus{
		Posts: len(posts),
		Tags:  len(content.Tags(posts)),
		At:    time.Now(),
	}
	ix.logger.Infof("indexed %d posts in %s", len(posts), time.Since(start).Round(time.Millisecond))
	return nil
}

// Status returns the result of the last reindex.
func (ix *Indexer) Status() IndexStatus {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.status
}
