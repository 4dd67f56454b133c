// Package cache keeps recently rendered note previews so reopening the
// preview overlay doesn't re-run the markdown renderer. Entries are
// validated against the note's modtime and the render width, so a stale
// or resized entry is a miss.
package cache

import (
	"container/list"
	"time"
)

type RenderCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key      string
	rendered string
	modTime  time.Time
	width    int
}

func NewRenderCache(size int) *RenderCache {
	return &RenderCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get returns the cached render for path when its modtime and width still
// match; a mismatch evicts the entry and reports a miss.
func (c *RenderCache) Get(path string, modTime time.Time, width int) (string, bool) {
	ele, hit := c.items[path]
	if !hit {
		return "", false
	}

	e := ele.Value.(*entry)
	if !e.modTime.Equal(modTime) || e.width != width {
		c.removeElement(ele)
		return "", false
	}

	c.evictList.MoveToFront(ele)
	return e.rendered, true
}

func (c *RenderCache) Put(path string, modTime time.Time, width int, rendered string) {
	if ele, hit := c.items[path]; hit {
		c.evictList.MoveToFront(ele)
		e := ele.Value.(*entry)
		e.rendered = rendered
		e.modTime = modTime
		e.width = width
		return
	}

	ele := c.evictList.PushFront(&entry{key: path, rendered: rendered, modTime: modTime, width: width})
	c.items[path] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *RenderCache) Invalidate(path string) {
	if ele, hit := c.items[path]; hit {
		c.removeElement(ele)
	}
}

func (c *RenderCache) Len() int {
	return c.evictList.Len()
}

func (c *RenderCache) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *RenderCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
