// Package dfs provides depth-first algorithms over a directed core.Graph:
// topological sorting and cycle detection.
//
// What:
//
//   - TopologicalSort(g): a linear ordering of the vertices such that for
//     every edge u→v, u appears before v. On a cycle it returns a
//     *CycleError carrying the closed path that was found.
//   - DetectCycles(g): every distinct cycle closed by a back-edge, each in
//     canonical rotation, sorted for deterministic output.
//
// How:
//
// Both walk the graph with three-colour marking (White, Gray, Black) and
// keep the current DFS path; a Gray→Gray edge is a back-edge and the path
// segment from its target is the cycle. Roots are taken in vertex
// insertion order and neighbours in edge insertion order.
//
// Complexity:
//
//   - TopologicalSort: Time O(V + E), Memory O(V)
//   - DetectCycles:    Time O(V + E + C·L²), Memory O(V + C·L)
//     (C = cycles found, L = their length)
package dfs
