package expand

import (
	"slices"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/assert"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// expansionStackHint is the initial capacity of the expansion stack; typical
// install graphs are shallow.
const expansionStackHint = 10

func hashComponent(c component.LazyComponent) uint64 { return c.Hash() }

func equalComponents(a, b component.LazyComponent) bool { return a.Equal(b) }

// expander holds the state of one expansion pass.
type expander struct {
	storage  *component.Storage
	toplevel component.TypeID
	log      *zap.Logger

	// stack holds the components whose expansion is in progress, outermost
	// first. If C1 installs C2 which installs C3 and C3 is being expanded,
	// stack is {C1, C2, C3}.
	stack []component.LazyComponent

	// inProgress holds the same components as stack, for loop lookup.
	inProgress *hashSet[component.LazyComponent]

	// expanded holds the components whose expansion has completed.
	expanded *hashSet[component.LazyComponent]
}

// ExpandLazyComponents expands every component in s.LazyComponents, and
// every component they install, appending their declarations to s.
//
// On success s.LazyComponents is empty. On an installation loop it returns an
// error wrapping a *LoopError (use errors.As) and s must be discarded: its
// declaration lists are partial. Nil entries left in s.LazyComponents by the
// caller are ignored.
func ExpandLazyComponents(s *component.Storage, toplevel component.TypeID, opts ...Option) error {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	e := &expander{
		storage:    s,
		toplevel:   toplevel,
		log:        o.Logger,
		stack:      make([]component.LazyComponent, 0, expansionStackHint),
		inProgress: newHashSet(expansionStackHint, hashComponent, equalComponents),
		expanded:   newHashSet(len(s.LazyComponents), hashComponent, equalComponents),
	}

	// 2. The work-list is popped from the back; reverse it so the first
	//    install is expanded first.
	slices.Reverse(s.LazyComponents)

	// 3. Drain the work-list
	return e.run()
}

func (e *expander) run() error {
	s := e.storage
	for len(s.LazyComponents) > 0 {
		assert.Invariant(len(e.stack) == e.inProgress.Len(), "expansion stack and in-progress set diverged")

		last := len(s.LazyComponents) - 1
		c := s.LazyComponents[last]

		// 3a. Boundary marker: the component on top of the stack is done.
		//     A nil the caller left in the work-list has no component to
		//     complete and is dropped.
		if c == nil {
			s.LazyComponents = s.LazyComponents[:last]
			if len(e.stack) == 0 {
				e.log.Debug("ignoring stray boundary marker")
				continue
			}
			e.complete()
			continue
		}

		// 3b. Already expanded through another install path: skip it.
		if e.expanded.Contains(c) {
			s.LazyComponents[last] = nil
			s.LazyComponents = s.LazyComponents[:last]
			continue
		}

		// 3c. Already being expanded: installation loop.
		if !e.inProgress.Insert(c) {
			loop := e.loopError(c)
			e.log.Debug("installation loop", zap.Stringer("toplevel", e.toplevel), zap.Strings("trace", loop.Trace))

			return errorc.With(loop, errorc.String(diag.KeyComponent, component.Describe(c)))
		}

		e.log.Debug("expanding lazy component", zap.String("component", component.Describe(c)))

		// 3d. Replace the slot by a boundary marker, then let the component
		//     add its declarations; nested installs land after the marker.
		s.LazyComponents[last] = nil
		e.stack = append(e.stack, c)
		mark := len(s.LazyComponents)
		c.AddBindings(s)

		// 3e. Keep the nested installs in installation order.
		slices.Reverse(s.LazyComponents[mark:])
	}

	return nil
}

// complete moves the innermost in-progress component to the expanded set.
// The in-progress entry is dropped before the stack slot is released.
func (e *expander) complete() {
	top := len(e.stack) - 1
	assert.Invariant(top >= 0, "boundary marker without a component in expansion")
	c := e.stack[top]
	e.inProgress.Erase(c)
	e.stack[top] = nil
	e.stack = e.stack[:top]
	e.expanded.Insert(c)
}

// loopError builds the installation trace for a loop closed by c.
func (e *expander) loopError(c component.LazyComponent) *LoopError {
	err := &LoopError{
		Toplevel:  e.toplevel,
		Trace:     make([]string, 0, len(e.stack)+1),
		LoopStart: -1,
	}
	for i, x := range e.stack {
		if err.LoopStart < 0 && x.Equal(c) {
			err.LoopStart = i
		}
		err.Trace = append(err.Trace, component.Describe(x))
	}
	err.Trace = append(err.Trace, component.Describe(c))

	return err
}
