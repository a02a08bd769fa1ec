package hxui

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pthm/hxui/lib/variants"
)

// File is one source file distributed with a registry entry.
type File struct {
	Name    string `msgpack:"name"`
	Content []byte `msgpack:"content"`
}

// Entry describes one component in the registry.
//
// Schemas maps schema names (usually the component's variant declarations,
// e.g. "button" or "dialog-content") to their resolved definitions. Schemas
// are code and are not carried in bundles.
type Entry struct {
	Name         string                      `msgpack:"name"`
	Description  string                      `msgpack:"description"`
	Schemas      map[string]*variants.Schema `msgpack:"-"`
	Files        []File                      `msgpack:"files"`
	Dependencies []string                    `msgpack:"dependencies"`
}

// SchemaNames returns the entry's schema names in sorted order.
func (e Entry) SchemaNames() []string {
	names := make([]string, 0, len(e.Schemas))
	for name := range e.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema returns the named schema. An empty name selects the only schema
// of an entry that has exactly one.
func (e Entry) Schema(name string) (*variants.Schema, error) {
	if name == "" {
		switch len(e.Schemas) {
		case 0:
			return nil, fmt.Errorf("%w: %s has no variant schema", ErrNotFound, e.Name)
		case 1:
			for _, s := range e.Schemas {
				return s, nil
			}
		default:
			return nil, fmt.Errorf("%w: %s has %v", ErrSchemaRequired, e.Name, e.SchemaNames())
		}
	}
	s, ok := e.Schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: schema %q of %s", ErrNotFound, name, e.Name)
	}
	return s, nil
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(log zerolog.Logger) Option {
	return func(reg *Registry) {
		reg.log = log
	}
}

// Registry holds component entries by name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	log     zerolog.Logger
}

// NewRegistry creates an empty registry. Logging is disabled unless
// WithLogger is given.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		entries: make(map[string]Entry),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Add registers entries with the registry.
// Panics if an entry has no name or its name is already registered, so
// mistakes surface when the registry is built rather than on lookup.
func (reg *Registry) Add(entries ...Entry) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, e := range entries {
		if e.Name == "" {
			panic("hxui: registry entry without a name")
		}
		if _, exists := reg.entries[e.Name]; exists {
			panic(fmt.Sprintf("hxui: entry collision for %q", e.Name))
		}
		reg.entries[e.Name] = e
		reg.log.Debug().
			Str("component", e.Name).
			Int("files", len(e.Files)).
			Strs("schemas", e.SchemaNames()).
			Msg("registered component")
	}
}

// Get returns the named entry.
func (reg *Registry) Get(name string) (Entry, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	e, ok := reg.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: component %q", ErrNotFound, name)
	}
	return e, nil
}

// List returns all entries sorted by name.
func (reg *Registry) List() []Entry {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	out := make([]Entry, 0, len(reg.entries))
	for _, e := range reg.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered entries.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.entries)
}

// Resolve resolves a selection against a component's schema. An empty
// schema name selects the component's only schema.
func (reg *Registry) Resolve(component, schema string, sel variants.Selection, extra ...string) (string, error) {
	e, err := reg.Get(component)
	if err != nil {
		return "", err
	}
	s, err := e.Schema(schema)
	if err != nil {
		return "", err
	}
	return s.Resolve(sel, extra...), nil
}
