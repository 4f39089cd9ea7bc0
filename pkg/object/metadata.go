package object

import (
	"fmt"

	"github.com/saworbit/kado/pkg/kadoerr"
)

// Metadata is the ordered str->str mapping attached to an Item (spec.md section 3).
// Go's map type has no iteration order, so Metadata tracks insertion order in a
// parallel key slice the way an ordered dict would.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata returns an empty, ready-to-use Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set assigns key to value, preserving the position of an existing key and appending a
// new one at the end. It accepts interface{} rather than string so that callers
// plumbing values in from an untyped source (CLI flags, decoded JSON) get the exact
// error taxonomy spec.md section 3 specifies: a non-string key is a type-error, a
// non-string value is a value-error. Typed Go callers should prefer SetString.
func (m *Metadata) Set(key, value any) error {
	k, ok := key.(string)
	if !ok {
		return fmt.Errorf("%w: metadata key must be a string, got %T", kadoerr.ErrType, key)
	}
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: metadata value must be a string, got %T", kadoerr.ErrValue, value)
	}
	m.SetString(k, v)
	return nil
}

// SetString assigns key to value directly, for callers that already hold strings.
func (m *Metadata) SetString(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key, if any.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the metadata keys in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of metadata entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Copy returns an independent deep copy.
func (m *Metadata) Copy() *Metadata {
	out := NewMetadata()
	for _, k := range m.keys {
		out.SetString(k, m.values[k])
	}
	return out
}
