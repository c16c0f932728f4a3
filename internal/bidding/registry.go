package bidding

import (
	"fmt"
	"sort"
)

// Metadata describes a registered rule set.
type Metadata struct {
	Description string
	Source      string // where the tree came from: "builtin", a file path, ...
}

// Entry is one registered rule set.
type Entry struct {
	ID   string
	Root Node
	Meta Metadata
}

// Registry is an explicit catalogue of named rule trees. Construct one per
// session with NewRegistry; a fresh Registry is the preferred reset between
// independent evaluation sessions.
//
// Registry is NOT safe for concurrent mutation. Embedders that register or
// clear from multiple goroutines must serialize externally; concurrent
// lookups against a registry that is no longer being mutated are fine.
type Registry struct {
	entries map[string]*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a rule set under id, overwriting any prior entry with the
// same id. Re-registration is a normal operation during iterative
// authoring, not an error.
func (r *Registry) Register(id string, root Node, meta Metadata) error {
	if id == "" {
		return fmt.Errorf("rule set id is required")
	}
	if root == nil {
		return fmt.Errorf("rule set %q: tree root is required", id)
	}
	r.entries[id] = &Entry{ID: id, Root: root, Meta: meta}
	return nil
}

// Get looks up a rule set by id.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// List returns all entries sorted by id.
func (r *Registry) List() []*Entry {
	entries := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Len returns the number of registered rule sets.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Clear empties the registry. Provided for embedders holding a long-lived
// registry; constructing a fresh Registry is equivalent and preferred.
func (r *Registry) Clear() {
	r.entries = make(map[string]*Entry)
}
