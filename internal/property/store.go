package property

import "sync"

// Store is the property bag used by the application.
type Store interface {
	// Get returns the value and whether the property is defined.
	Get(name string) (string, bool)
	// Set defines or replaces a property.
	Set(name, value string)
	// SetIfAbsent defines a property only if it is not defined yet and
	// reports whether it did.
	SetIfAbsent(name, value string) bool
	// Names lists the defined properties in definition order.
	Names() []string
}

// Map is an in-memory Store. It is safe for concurrent use and remembers
// the order in which properties were first defined.
type Map struct {
	mu     sync.RWMutex
	values map[string]string
	order  []string
}

// New creates an empty in-memory store.
func New() *Map {
	return &Map{values: make(map[string]string)}
}

// FromMap creates a store holding the given values. Keys are defined in
// sorted order so the result is deterministic.
func FromMap(values map[string]string) *Map {
	m := New()
	for _, k := range sortedKeys(values) {
		m.Set(k, values[k])
	}
	return m
}

// Get implements Store.
func (m *Map) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

// Set implements Store.
func (m *Map) Set(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[name]; !ok {
		m.order = append(m.order, name)
	}
	m.values[name] = value
}

// SetIfAbsent implements Store.
func (m *Map) SetIfAbsent(name, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[name]; ok {
		return false
	}
	m.order = append(m.order, name)
	m.values[name] = value
	return true
}

// Names implements Store.
func (m *Map) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Lookup returns the value of name, or "" when undefined.
func Lookup(s Store, name string) string {
	v, _ := s.Get(name)
	return v
}
