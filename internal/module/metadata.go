package module

import (
	"context"

	"github.com/charmbracelet/log"

	"nuros-switch/internal/descriptor"
	"nuros-switch/internal/logger"
)

// Loader fills in a module's descriptor fields on demand.
type Loader struct {
	eval descriptor.Evaluator
	log  *log.Logger
}

// NewLoader creates a Loader backed by eval. A nil logger discards diagnostics.
func NewLoader(eval descriptor.Evaluator, l *log.Logger) *Loader {
	return &Loader{eval: eval, log: logger.OrDiscard(l)}
}

// Load requests every protocol field that is not cached yet, one evaluation
// per field. It never fails: a field that cannot be evaluated stays absent.
func (l *Loader) Load(ctx context.Context, m *Module) {
	for _, f := range descriptor.Fields {
		l.LoadField(ctx, m, f)
	}
}

// LoadField makes sure f is cached on m if the descriptor provides it and
// returns the result.
func (l *Loader) LoadField(ctx context.Context, m *Module, f descriptor.Field) (string, bool) {
	if v, ok := m.Field(f); ok {
		return v, true
	}

	value, err := l.eval.ReadField(ctx, m.Path, f)
	if err != nil {
		l.log.Debug("metadata absent", "module", m.Name, "field", f, "err", err)
		return "", false
	}
	if value == "" {
		return "", false
	}

	m.setField(f, value)
	return value, true
}
