package classify

import (
	"context"
	"fmt"

	billy "github.com/go-git/go-billy/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/backmassage/typecopy/internal/config"
)

// Cached memoizes successful descriptions by path. Errors are not cached.
type Cached struct {
	next   Classifier
	cache  *lru.Cache[string, string]
	misses int
}

// NewCached wraps next with an LRU cache holding up to size paths.
func NewCached(next Classifier, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("classifier cache: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

// Describe returns the cached description for path, asking the wrapped
// classifier on a miss.
func (c *Cached) Describe(ctx context.Context, path string) (string, error) {
	if desc, ok := c.cache.Get(path); ok {
		return desc, nil
	}
	c.misses++
	desc, err := c.next.Describe(ctx, path)
	if err != nil {
		return "", err
	}
	c.cache.Add(path, desc)
	return desc, nil
}

// Misses returns how many lookups reached the wrapped classifier.
func (c *Cached) Misses() int { return c.misses }

// New builds the backend selected by cfg, reading through fs for the
// in-process sniffer, wrapped in a [Cached] of cfg.CacheSize entries.
func New(cfg *config.Config, fs billy.Filesystem) (*Cached, error) {
	var backend Classifier
	switch cfg.Classifier {
	case config.ClassifierBuiltin:
		backend = NewSniffer(fs)
	case config.ClassifierFile:
		backend = NewFileCommand(cfg.FileCommand)
	default:
		return nil, fmt.Errorf("unknown classifier %q", cfg.Classifier)
	}
	return NewCached(backend, cfg.CacheSize)
}
