package switcher

import (
	"context"

	"nuros-switch/internal/module"
	"nuros-switch/internal/state"
)

// Entry is an alternative annotated with whether the link currently points at it.
type Entry struct {
	module.Alternative
	Current bool
}

// Listing is the answer to the list action.
type Listing struct {
	Module   *module.Module
	LinkPath string
	Link     state.Link
	// Entries keep the order the descriptor printed them in.
	Entries []Entry
}

// List enumerates m's alternatives and marks the one the managed link
// resolves to. Paths are compared after canonicalization on both sides.
func (e *Engine) List(ctx context.Context, m *module.Module) (*Listing, error) {
	linkPath, err := e.linkPath(ctx, m)
	if err != nil {
		return nil, err
	}

	alts, err := e.resolver.Resolve(ctx, m)
	if err != nil {
		return nil, err
	}

	link := state.Inspect(linkPath)
	listing := &Listing{Module: m, LinkPath: linkPath, Link: link}
	for _, alt := range alts {
		listing.Entries = append(listing.Entries, Entry{
			Alternative: alt,
			Current:     link.PointsTo(alt.Path),
		})
	}
	return listing, nil
}

// Status is the answer to the show action.
type Status struct {
	Module   *module.Module
	LinkPath string
	Link     state.Link
}

// Show reports where m's managed link points. A missing link is not an error.
func (e *Engine) Show(ctx context.Context, m *module.Module) (*Status, error) {
	linkPath, err := e.linkPath(ctx, m)
	if err != nil {
		return nil, err
	}
	return &Status{Module: m, LinkPath: linkPath, Link: state.Inspect(linkPath)}, nil
}

// Describe loads every metadata field for the help action. It cannot fail.
func (e *Engine) Describe(ctx context.Context, m *module.Module) *module.Module {
	e.loader.Load(ctx, m)
	return m
}
