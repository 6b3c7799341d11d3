package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, fanned out by
// hash prefix. It is the default backend for CLI usage.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

type fileEntry struct {
	Payload   []byte `json:"payload"`
	ExpiresAt int64  `json:"expires_at,omitempty"` // unix nanos, 0 = never
}

// Get retrieves a value. Corrupt or expired entries are removed and
// reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if entry.ExpiresAt != 0 && time.Now().UnixNano() > entry.ExpiresAt {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Payload, true, nil
}

// Set stores a value. A ttl of zero keeps the entry until deleted.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl).UnixNano()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes a value; missing keys are ignored.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file backend.
func (c *FileCache) Close() error { return nil }

// path maps a key to a file, using the first two hash characters as a
// fan-out subdirectory.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
