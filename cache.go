package figure

import "sync"

// CachedPath is a path built from control points together with its end tangents.
type CachedPath struct {
	Path  *Path
	Start Point // tangent at the start
	End   Point // tangent at the end
}

type cacheKey struct {
	version uint64
	method  DrawingMethod
	closed  bool
}

// PathCache holds the most recently built path of a line figure. The entry is rebuilt when the control
// points, the drawing method, or the closed flag change. It is safe for concurrent use.
type PathCache struct {
	mu    sync.Mutex
	valid bool
	key   cacheKey
	entry CachedPath
}

// Get returns the cached path for the given geometry, building it when the cache is stale. The
// returned path must not be modified.
func (c *PathCache) Get(cp *ControlPoints, method DrawingMethod, closed bool) CachedPath {
	key := cacheKey{cp.Version(), method, closed}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.key == key {
		return c.entry
	}
	path, start, end := Build(cp.ps, method, closed)
	c.entry = CachedPath{path, start, end}
	c.key = key
	c.valid = true
	return c.entry
}

// Invalidate marks the cached entry as stale.
func (c *PathCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Drop releases the cached entry, the next Get rebuilds it.
func (c *PathCache) Drop() {
	c.mu.Lock()
	c.valid = false
	c.entry = CachedPath{}
	c.mu.Unlock()
}

// Valid returns true if the entry matches the given geometry.
func (c *PathCache) Valid(cp *ControlPoints, method DrawingMethod, closed bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid && c.key == cacheKey{cp.Version(), method, closed}
}
