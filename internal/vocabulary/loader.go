package vocabulary

import (
	"context"
	"log"
	"sync"
)

// CacheKey is the key the vocabulary document is stored under.
const CacheKey = "micro_data"

// Cache stores a fetched document. Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context) (*Document, error)
	Set(ctx context.Context, doc *Document) error
}

type Source interface {
	Fetch(ctx context.Context) (*Document, error)
}

type Loader struct {
	cache  Cache
	source Source
}

func NewLoader(cache Cache, source Source) *Loader {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Loader{cache: cache, source: source}
}

// Load returns the cached document, fetching and caching it on a miss.
// Cache failures are logged and treated as a miss; a failed fetch is
// returned as ErrVocabularyUnavailable without retrying.
func (l *Loader) Load(ctx context.Context) (*Document, error) {
	doc, err := l.cache.Get(ctx)
	if err != nil {
		log.Printf("vocabulary cache read failed: %v", err)
	}
	if doc != nil {
		return doc, nil
	}

	return l.Refresh(ctx)
}

// Refresh fetches the document from the source and replaces the cached copy.
func (l *Loader) Refresh(ctx context.Context) (*Document, error) {
	if l.source == nil {
		return nil, ErrVocabularyUnavailable
	}

	doc, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, doc); err != nil {
		log.Printf("vocabulary cache write failed: %v", err)
	}
	return doc, nil
}

// MemoryCache keeps the document for the lifetime of the process.
type MemoryCache struct {
	mu  sync.RWMutex
	doc *Document
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(ctx context.Context) (*Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc, nil
}

func (c *MemoryCache) Set(ctx context.Context, doc *Document) error {
	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()
	return nil
}
