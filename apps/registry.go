// Package apps holds the static application registry: a read-only mapping
// from application instance identifiers to descriptors with a canonical
// route segment. The registry is built once (from builtins or a TOML file)
// and never mutated; consumers receive it as an injected value.
package apps

import (
	"sort"

	"github.com/Bitcoinera/aragon/errors"
)

// Descriptor describes one application known to the dashboard.
type Descriptor struct {
	// ID is the application instance identifier used in URLs ("home", "voting")
	ID string `toml:"id"`

	// Name is the human-readable application name
	Name string `toml:"name"`

	// Route is the canonical path segment for the app, with leading slash
	// ("/" for the dashboard home, "/permissions", ...)
	Route string `toml:"route"`
}

// Registry is an immutable lookup table of application descriptors.
// The zero value is an empty registry.
type Registry struct {
	byID map[string]Descriptor
}

// New builds a registry from descriptors. Descriptors must carry a
// non-empty ID and route, and IDs must be unique.
func New(descriptors ...Descriptor) (*Registry, error) {
	byID := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, errors.Wrap(errors.ErrInvalidRegistry, "descriptor with empty id")
		}
		if d.Route == "" {
			return nil, errors.Wrapf(errors.ErrInvalidRegistry, "app %q has empty route", d.ID)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, errors.Wrapf(errors.ErrInvalidRegistry, "duplicate app id %q", d.ID)
		}
		byID[d.ID] = d
	}
	return &Registry{byID: byID}, nil
}

// Has reports whether an application with the given id is registered.
func (r *Registry) Has(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.byID[id]
	return ok
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	d, ok := r.byID[id]
	return d, ok
}

// IDs returns all registered application ids, sorted.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered applications.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byID)
}
