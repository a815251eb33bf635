package selection

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// UnknownToolsetError reports a toolset name with no registered definition.
type UnknownToolsetError struct {
	Name string
}

func (e *UnknownToolsetError) Error() string {
	return fmt.Sprintf("unknown toolset: %s", e.Name)
}

// Registry maps toolset names to their curated members. A member is either a
// full tool name or a pattern; declaration order is meaningful and carries
// through to the expanded result.
type Registry struct {
	mu       sync.RWMutex
	toolsets map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{toolsets: map[string][]string{}}
}

func (r *Registry) Register(name string, members []string) error {
	if name == "" {
		return errors.New("toolset name required")
	}
	if len(members) == 0 {
		return errors.New("toolset members required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.toolsets[name]; exists {
		return fmt.Errorf("toolset already registered: %s", name)
	}
	r.toolsets[name] = append([]string{}, members...)
	return nil
}

func (r *Registry) MustRegister(name string, members []string) {
	if err := r.Register(name, members); err != nil {
		panic(err)
	}
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.toolsets[name]
	return ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.toolsets))
	for name := range r.toolsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Members returns the declared member list of a toolset, in declaration
// order.
func (r *Registry) Members(name string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members, ok := r.toolsets[name]
	if !ok {
		return nil, false
	}
	return append([]string{}, members...), true
}

// Resolve expands the named toolset against catalog: each member is matched
// in declaration order and the concatenation is deduplicated, first
// occurrence winning. Members absent from the catalog simply contribute
// nothing. An unregistered name yields an UnknownToolsetError.
func (r *Registry) Resolve(name string, catalog []string) ([]string, error) {
	r.mu.RLock()
	members, ok := r.toolsets[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownToolsetError{Name: name}
	}
	seen := map[string]bool{}
	var expanded []string
	for _, member := range members {
		for _, tool := range Match(member, catalog) {
			if seen[tool] {
				continue
			}
			seen[tool] = true
			expanded = append(expanded, tool)
		}
	}
	return expanded, nil
}

var defaultRegistry = NewRegistry()

// Register adds a toolset definition to the process-wide default registry.
func Register(name string, members []string) error {
	return defaultRegistry.Register(name, members)
}

func MustRegister(name string, members []string) {
	defaultRegistry.MustRegister(name, members)
}

// DefaultRegistry returns the registry populated by toolset definition
// packages at init time.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
