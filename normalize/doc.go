// Package normalize turns the flat binding list produced by lazy component
// expansion into the binding table of one container: one entry per type,
// checked for consistency, with every provably safe interface→implementation
// indirection compressed away.
//
// What:
//
//   - NormalizeBindings(...): deduplicates bindings, feeds the allocator plan
//     with one entry per raw declaration, then applies binding compression.
//
// Deduplication:
//
// Equal declarations of the same type are legal (diamond-shaped install
// graphs produce them) and collapse into one. Different declarations of the
// same type are a *ConflictError.
//
// Compression:
//
// A candidate (class C, interface I) is dropped when
//
//  1. C is a dependency of some multibinding provider;
//  2. C is an exposed type;
//  3. some bound type X other than I depends on C.
//
// A surviving candidate replaces I's binding by the candidate recipe (which
// builds C in I's slot) and removes C's binding. The fold is recorded in the
// returned BindingCompressionInfoMap, keyed by C. No candidate's class is
// ever another candidate's interface, so folds never chain.
//
// Complexity:
//
//   - Time:   O(B + M·d + E + K) for B bindings, M multibindings of d deps,
//     E dependency edges and K candidates.
//   - Memory: O(B + K).
package normalize
