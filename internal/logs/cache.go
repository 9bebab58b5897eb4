package logs

import "sync"

type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// lineCache remembers the last file read for each directory. A nil
// *lineCache is valid and never hits.
type lineCache struct {
	mu      sync.Mutex
	entries map[string]cachedLines
}

type cachedLines struct {
	key   cacheKey
	lines []string
}

func newLineCache() *lineCache {
	return &lineCache{entries: make(map[string]cachedLines)}
}

func keyFor(entry Entry) cacheKey {
	return cacheKey{path: entry.Path, size: entry.Size, modTime: entry.ModTime.UnixNano()}
}

func (c *lineCache) lookup(dir string, entry Entry) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.entries[dir]
	if !ok || cached.key != keyFor(entry) {
		return nil, false
	}
	out := make([]string, len(cached.lines))
	copy(out, cached.lines)
	return out, true
}

func (c *lineCache) store(dir string, entry Entry, lines []string) {
	if c == nil {
		return
	}
	stored := make([]string, len(lines))
	copy(stored, lines)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dir] = cachedLines{key: keyFor(entry), lines: stored}
}
