package expand

// State is the serializable form of a Controller. Only expanded ids are
// recorded; anything absent restores as collapsed.
type State struct {
	Expanded []string `json:"expanded" yaml:"expanded"`
}

// Snapshot captures the current flags.
func (c *Controller) Snapshot() State {
	return State{Expanded: c.Expanded()}
}

// Restore replaces the flags with s. Observers of ids whose value changes
// are notified; registrations survive the restore.
func (c *Controller) Restore(s State) {
	want := make(map[string]bool, len(s.Expanded))
	for _, id := range s.Expanded {
		want[id] = true
	}
	for id, v := range c.state {
		if v && !want[id] {
			c.state[id] = false
			c.notify(id, false)
		}
	}
	for id := range want {
		if !c.state[id] {
			c.state[id] = true
			c.notify(id, true)
		}
	}
}

// Restored returns a new Controller holding s.
func Restored(s State) *Controller {
	c := New()
	c.Restore(s)
	return c
}
