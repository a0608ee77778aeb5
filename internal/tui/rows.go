package tui

// rowCache holds the last rendering of each row. A row is only rendered
// again after something about that row changed.
type rowCache struct {
	out     map[string]string
	renders map[string]int
}

func newRowCache() *rowCache {
	return &rowCache{out: make(map[string]string), renders: make(map[string]int)}
}

func (c *rowCache) get(id string) (string, bool) {
	s, ok := c.out[id]
	return s, ok
}

func (c *rowCache) put(id, s string) {
	c.out[id] = s
	c.renders[id]++
}

func (c *rowCache) invalidate(id string) { delete(c.out, id) }

func (c *rowCache) clear() { c.out = make(map[string]string) }
