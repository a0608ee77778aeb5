// Package expand holds the expand/collapse state of list rows.
//
// A Controller owns one boolean per item identity. Rows start collapsed,
// change only through Toggle/Set, and notify only the observers registered
// for their own id. The zero-value semantics of unseen ids are "collapsed",
// so a Controller can be queried for rows it has never seen.
//
// A Controller is not safe for concurrent use; it is meant to be driven from
// the UI event loop.
package expand

import "sort"

// Listener is called after the flag of a watched id changes.
type Listener func(id string, expanded bool)

// Controller maps item ids to their expanded flag.
type Controller struct {
	state     map[string]bool
	listeners map[string]map[uint64]Listener
	nextID    uint64
}

// New returns an empty controller; every id reads as collapsed.
func New() *Controller {
	return &Controller{
		state:     make(map[string]bool),
		listeners: make(map[string]map[uint64]Listener),
	}
}

// IsExpanded reports the flag for id. Unseen ids are collapsed.
func (c *Controller) IsExpanded(id string) bool {
	return c.state[id]
}

// Toggle flips the flag for id and returns the new value.
func (c *Controller) Toggle(id string) bool {
	v := !c.state[id]
	c.state[id] = v
	c.notify(id, v)
	return v
}

// Set forces the flag for id. Observers are only notified on change.
func (c *Controller) Set(id string, expanded bool) {
	old := c.state[id]
	c.state[id] = expanded
	if old != expanded {
		c.notify(id, expanded)
	}
}

// Padding picks the layout target for id: collapsed or expanded.
func (c *Controller) Padding(id string, collapsed, expanded int) int {
	return Pick(c.IsExpanded(id), collapsed, expanded)
}

// Label picks the textual affordance for id, e.g. "Show more"/"Show less".
func (c *Controller) Label(id, collapsed, expanded string) string {
	return Pick(c.IsExpanded(id), collapsed, expanded)
}

// Pick returns expandedValue when expanded is true, collapsedValue otherwise.
func Pick[T any](expanded bool, collapsedValue, expandedValue T) T {
	if expanded {
		return expandedValue
	}
	return collapsedValue
}

// Watch registers fn for changes of id only. The returned func removes it.
func (c *Controller) Watch(id string, fn Listener) (cancel func()) {
	set := c.listeners[id]
	if set == nil {
		set = make(map[uint64]Listener)
		c.listeners[id] = set
	}
	c.nextID++
	key := c.nextID
	set[key] = fn
	return func() {
		if s := c.listeners[id]; s != nil {
			delete(s, key)
			if len(s) == 0 {
				delete(c.listeners, id)
			}
		}
	}
}

// Watched reports whether at least one observer is registered for id.
func (c *Controller) Watched(id string) bool {
	return len(c.listeners[id]) > 0
}

// Forget drops the flag and observers of id, as when the row is removed.
// A later query sees a fresh, collapsed row.
func (c *Controller) Forget(id string) {
	delete(c.state, id)
	delete(c.listeners, id)
}

// Retain forgets every id that is not listed in ids.
func (c *Controller) Retain(ids []string) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	for id := range c.state {
		if _, ok := keep[id]; !ok {
			delete(c.state, id)
		}
	}
	for id := range c.listeners {
		if _, ok := keep[id]; !ok {
			delete(c.listeners, id)
		}
	}
}

// Expanded returns the sorted ids that are currently expanded.
func (c *Controller) Expanded() []string {
	out := make([]string, 0, len(c.state))
	for id, v := range c.state {
		if v {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns how many ids are currently expanded.
func (c *Controller) Len() int {
	n := 0
	for _, v := range c.state {
		if v {
			n++
		}
	}
	return n
}

func (c *Controller) notify(id string, expanded bool) {
	set := c.listeners[id]
	if len(set) == 0 {
		return
	}
	// Listeners may cancel themselves while being called.
	fns := make([]Listener, 0, len(set))
	for _, fn := range set {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(id, expanded)
	}
}
