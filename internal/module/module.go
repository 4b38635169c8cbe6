// Package module discovers descriptor scripts, loads their metadata and
// resolves the alternatives they offer.
package module

import "nuros-switch/internal/descriptor"

// Scope tells where a module was discovered. User modules shadow system
// modules of the same name.
type Scope int

const (
	// ScopeUser is the per-user module directory.
	ScopeUser Scope = iota
	// ScopeSystem is the system-wide module directory.
	ScopeSystem
)

// String returns a short scope label.
func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Module is one discovered descriptor script.
//
// Name, Path and Scope are fixed at discovery. The descriptor fields start
// out absent and are filled in by a Loader; once present they are kept for
// the lifetime of the record.
type Module struct {
	Name  string
	Path  string
	Scope Scope

	fields map[descriptor.Field]string
}

// New creates a module record with no metadata loaded.
func New(name, path string, scope Scope) *Module {
	return &Module{
		Name:   name,
		Path:   path,
		Scope:  scope,
		fields: make(map[descriptor.Field]string),
	}
}

// Field returns the cached value of f and whether it is present.
func (m *Module) Field(f descriptor.Field) (string, bool) {
	v, ok := m.fields[f]
	return v, ok
}

// setField caches a non-empty value. Empty values mean "not provided".
func (m *Module) setField(f descriptor.Field, value string) {
	if value == "" {
		return
	}
	if m.fields == nil {
		m.fields = make(map[descriptor.Field]string)
	}
	m.fields[f] = value
}

// Description returns MODULE_DESCRIPTION if loaded.
func (m *Module) Description() (string, bool) { return m.Field(descriptor.FieldDescription) }

// Category returns MODULE_CATEGORY if loaded.
func (m *Module) Category() (string, bool) { return m.Field(descriptor.FieldCategory) }

// LinkPath returns MODULE_LINK if loaded.
func (m *Module) LinkPath() (string, bool) { return m.Field(descriptor.FieldLink) }

// ExtraLinks returns MODULE_EXTRA_LINKS if loaded.
func (m *Module) ExtraLinks() (string, bool) { return m.Field(descriptor.FieldExtraLinks) }

// IsUser reports whether the module came from the user directory.
func (m *Module) IsUser() bool {
	return m.Scope == ScopeUser
}
