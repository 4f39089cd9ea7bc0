// Package index implements the in-memory multi-map from spec.md section 4.7: an
// index maps a hashable key to a non-empty set of hashable values, collapsing
// duplicate adds and dropping a key the moment its value set empties.
package index

import (
	"fmt"

	"github.com/saworbit/kado/pkg/kadoerr"
)

// Index is a multi-map from string key to a set of string values. The core's own key
// and value types (UUIDs, hex digests) all stringify cleanly, so the map is typed over
// strings rather than interface{}: it keeps callers from needing a type switch on every
// lookup while still covering every value kind spec.md's object model produces.
type Index struct {
	data map[string]map[string]struct{}
}

// New returns an empty Index.
func New() *Index {
	return &Index{data: make(map[string]map[string]struct{})}
}

// Contains reports whether k is present.
func (ix *Index) Contains(k string) bool {
	_, ok := ix.data[k]
	return ok
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int {
	return len(ix.data)
}

// Iter returns the index's keys in unspecified order.
func (ix *Index) Iter() []string {
	out := make([]string, 0, len(ix.data))
	for k := range ix.data {
		out = append(out, k)
	}
	return out
}

// Count returns the total number of (key, value) pairs across the whole index. If k is
// given, it instead returns the number of values stored under that one key, failing
// with kadoerr.ErrKey if k is absent.
func (ix *Index) Count(k ...string) (int, error) {
	if len(k) == 0 {
		total := 0
		for _, set := range ix.data {
			total += len(set)
		}
		return total, nil
	}
	set, ok := ix.data[k[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", kadoerr.ErrKey, k[0])
	}
	return len(set), nil
}

// Get returns a copy of the values stored under k as an ordered slice (the iteration
// order of the underlying set, which is otherwise unspecified). Missing k fails with
// kadoerr.ErrKey.
func (ix *Index) Get(k string) ([]string, error) {
	set, ok := ix.data[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", kadoerr.ErrKey, k)
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out, nil
}

// Add inserts (k, v); re-adding an existing pair is a no-op.
func (ix *Index) Add(k, v string) {
	set, ok := ix.data[k]
	if !ok {
		set = make(map[string]struct{})
		ix.data[k] = set
	}
	set[v] = struct{}{}
}

// Remove removes v from k's value set, dropping k entirely once its set empties. If v
// is omitted, k is removed outright regardless of how many values it holds. Missing k
// fails with kadoerr.ErrKey; a v not present under k fails with kadoerr.ErrValue.
func (ix *Index) Remove(k string, v ...string) error {
	set, ok := ix.data[k]
	if !ok {
		return fmt.Errorf("%w: %q", kadoerr.ErrKey, k)
	}
	if len(v) == 0 {
		delete(ix.data, k)
		return nil
	}
	if _, ok := set[v[0]]; !ok {
		return fmt.Errorf("%w: %q under key %q", kadoerr.ErrValue, v[0], k)
	}
	delete(set, v[0])
	if len(set) == 0 {
		delete(ix.data, k)
	}
	return nil
}

// Discard behaves like Remove but swallows kadoerr.ErrKey and kadoerr.ErrValue, the
// index's one documented recoverable operation.
func (ix *Index) Discard(k string, v ...string) {
	_ = ix.Remove(k, v...)
}

// Clear removes every entry.
func (ix *Index) Clear() {
	ix.data = make(map[string]map[string]struct{})
}
