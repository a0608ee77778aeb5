package model

import "strconv"

// Item is one greeting row. ID is stable across reordering and restarts;
// Label is the name shown after "Hello,".
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultItems returns n rows labelled "0".."n-1", ids equal to labels.
func DefaultItems(n int) []Item {
	if n < 0 {
		n = 0
	}
	out := make([]Item, n)
	for i := range out {
		s := strconv.Itoa(i)
		out[i] = Item{ID: s, Label: s}
	}
	return out
}

// NamedItems returns one row per name, keyed by position.
func NamedItems(names []string) []Item {
	out := make([]Item, len(names))
	for i, n := range names {
		out[i] = Item{ID: strconv.Itoa(i), Label: n}
	}
	return out
}

// IDs lists the ids of items in order.
func IDs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// Find returns the index of id in items, or -1.
func Find(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
