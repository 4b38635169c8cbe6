package module

import (
	"errors"
	"fmt"
)

// ErrModuleNotFound is returned when no discovered module has the requested name.
var ErrModuleNotFound = errors.New("module not found")

// NotFoundError carries the name that failed to resolve.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("module '%s' not found", e.Name)
}

// Unwrap lets errors.Is match ErrModuleNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrModuleNotFound
}

// Registry is the ordered set of discovered modules. Order is discovery
// order and names are unique: the first module registered under a name wins.
type Registry struct {
	modules []*Module
	byName  map[string]*Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Module)}
}

// Add registers m unless its name is taken. It reports whether m was added.
func (r *Registry) Add(m *Module) bool {
	if _, exists := r.byName[m.Name]; exists {
		return false
	}
	r.modules = append(r.modules, m)
	r.byName[m.Name] = m
	return true
}

// Find returns the module registered under name.
func (r *Registry) Find(name string) (*Module, error) {
	if m, ok := r.byName[name]; ok {
		return m, nil
	}
	return nil, &NotFoundError{Name: name}
}

// Modules returns the registered modules in discovery order.
func (r *Registry) Modules() []*Module {
	out := make([]*Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.modules)
}
