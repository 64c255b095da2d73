package depgraph

import (
	"strings"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// ErrDependencyLoop indicates that a bound type depends on itself,
// directly or transitively.
var ErrDependencyLoop = diag.NewError("dependency loop")

// LoopError reports a dependency loop. Path is closed: its first and last
// elements are the same type.
type LoopError struct {
	Path []component.TypeID
}

// Error renders the loop as "A -> B -> A".
func (e *LoopError) Error() string {
	names := make([]string, len(e.Path))
	for i, t := range e.Path {
		names[i] = t.String()
	}

	return "Found a dependency loop: " + strings.Join(names, " -> ")
}

// Unwrap makes errors.Is(err, ErrDependencyLoop) hold.
func (e *LoopError) Unwrap() error { return ErrDependencyLoop }
