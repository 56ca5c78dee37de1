package mcpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/xutil/xuerrors"
)

// documentInput represents the three ways a document can be provided to a
// tool. Exactly one of File, URL, or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
}

// cacheEntry holds cached document bytes with LRU ordering and TTL expiry.
type cacheEntry struct {
	data      []byte
	insertAt  time.Time
	expiresAt time.Time
}

// docCacheStore provides a session-scoped cache for file and URL documents.
// File inputs are keyed by (absolutePath, modTime) and URL inputs by URL
// string. Entries have per-type TTLs and a background sweeper removes
// expired entries.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns cached bytes or nil. Expired entries are lazily removed.
func (c *docCacheStore) get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.data
	}
	return nil
}

// putWithTTL stores data with a specific TTL, evicting the oldest entry if at capacity.
func (c *docCacheStore) putWithTTL(key string, data []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{data: data, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for file and URL inputs. Inline content
// is never cached.
func makeCacheKey(d documentInput) string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.URL != "":
		return "url:" + d.URL
	default:
		return ""
	}
}

// resolve returns the document bytes from whichever input was provided.
func (d documentInput) resolve(ctx context.Context) ([]byte, error) {
	count := 0
	for _, s := range []string{d.File, d.URL, d.Content} {
		if s != "" {
			count++
		}
	}
	if count != 1 {
		return nil, xuerrors.Input("input", "exactly one of file, url, or content must be provided (got %d)", count)
	}

	if d.Content != "" {
		if int64(len(d.Content)) > cfg.MaxInputSize {
			return nil, xuerrors.Input("content", "inline content size %d bytes exceeds maximum %d bytes; set XUTIL_MCP_MAX_INPUT_SIZE to increase",
				len(d.Content), cfg.MaxInputSize)
		}
		return []byte(d.Content), nil
	}

	var key string
	ttl := cfg.CacheFileTTL
	if cfg.CacheEnabled {
		key = makeCacheKey(d)
		if d.URL != "" {
			ttl = cfg.CacheURLTTL
		}
	}
	if key != "" {
		if cached := docCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var (
		data []byte
		err  error
	)
	if d.File != "" {
		data, err = readFile(d.File)
	} else {
		data, err = fetch(ctx, d.URL)
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		docCache.putWithTTL(key, data, ttl)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f, path)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	client := http.DefaultClient
	if !cfg.AllowPrivateIPs {
		client = newSafeHTTPClient()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return readLimited(resp.Body, url)
}

func readLimited(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, cfg.MaxInputSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.MaxInputSize {
		return nil, xuerrors.Input("input", "%s exceeds maximum size of %d bytes", name, cfg.MaxInputSize)
	}
	return data, nil
}
