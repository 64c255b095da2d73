// Package expand flattens the graph of lazily installed components into the
// binding, multibinding and compression-candidate lists of a
// component.Storage, expanding every distinct component exactly once and
// detecting installation loops.
//
// What:
//
//   - ExpandLazyComponents(s, toplevel, opts...): drains s.LazyComponents.
//     Each component's AddBindings runs once; a component met again after its
//     expansion completed (diamond installs) is skipped.
//   - A component that installs itself, directly or through other components,
//     aborts the expansion with a *LoopError carrying the installation trace.
//
// How:
//
// The traversal is depth-first but not recursive. The work-list is a stack;
// before a component's own contributions are pushed, its slot is replaced by
// a nil boundary marker. Popping the marker means everything the component
// installed has been expanded, so the component moves from the in-progress
// set to the fully-expanded set. Both sets compare components by content
// (LazyComponent.Hash/Equal), never by descriptor address.
//
// Ordering:
//
//	top installs A, B;  A installs C
//	expansion order:    A, C, B
//
// Siblings keep their installation order; nested installs are expanded
// before the next sibling.
//
// Complexity:
//
//   - Time:   O(N + I) hash operations, N = distinct components, I = installs.
//   - Memory: O(N + D), D = maximum installation depth (no recursion).
//
// Errors:
//
//   - ErrInstallationLoop (via *LoopError) when a component installs itself.
package expand
