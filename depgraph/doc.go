// Package depgraph builds the dependency graph of a normalized binding table
// and derives the order in which a container can construct its instances.
//
// What:
//
//   - Build(bindings): a core.Graph with one vertex per bound type and one
//     directed edge X→D for every dependency D of a recipe binding X.
//     Created bindings have no outgoing edges.
//   - TopologicalOrder(): every dependency before its dependents, from
//     dfs.TopologicalSort.
//   - Cycles(): every distinct dependency loop, from dfs.DetectCycles.
//   - Dependents(t), Unbound(): reverse edges, and dependencies that no
//     binding in the table provides.
//
// Why:
//
// A binding table can be individually consistent and still unbuildable: a
// type that (transitively) needs itself can never be constructed. The check
// runs once, before any factory is called, so the loop is reported at
// startup with the full path instead of at first use.
//
// Complexity:
//
//   - Build:            Time O(V + E), Memory O(V + E)
//   - TopologicalOrder: Time O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrDependencyLoop (via *LoopError) when the graph has a cycle.
package depgraph
