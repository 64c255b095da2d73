package expand

import (
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// ErrInstallationLoop indicates that a lazy component installs itself,
// directly or transitively.
var ErrInstallationLoop = diag.NewError("loop in lazy component installation")

// LoopError reports an installation loop.
//
// Trace lists the expansion stack from the outermost component to the most
// deeply nested one, followed by the component whose install closed the loop.
// LoopStart is the index in Trace of the first occurrence of that component.
type LoopError struct {
	Toplevel  component.TypeID
	Trace     []string
	LoopStart int
}

// Error renders the installation trace, one component per line, with a
// marker where the loop starts.
func (e *LoopError) Error() string {
	var b strings.Builder
	b.WriteString("Found a loop while expanding lazily installed components.\n")
	b.WriteString("Component installation trace (from top-level to the most deeply-nested):\n")
	b.WriteString(e.Toplevel.String())
	b.WriteByte('\n')
	for i, name := range e.Trace {
		if i == e.LoopStart {
			b.WriteString("<-- The loop starts here\n")
		}
		b.WriteString(name)
		if i < len(e.Trace)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Unwrap makes errors.Is(err, ErrInstallationLoop) hold.
func (e *LoopError) Unwrap() error { return ErrInstallationLoop }

// Option configures ExpandLazyComponents.
type Option func(*Options)

// Options holds the expander settings.
type Options struct {
	// Logger receives debug-level expansion events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
