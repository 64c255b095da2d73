// Package injgraph is the resolution engine of a dependency-injection
// container: it turns a set of independently declared, possibly overlapping
// component specifications into one flat, consistent, allocation-planned
// binding table before any object is constructed.
//
// What is resolved:
//
//   - Bindings: a type mapped to the recipe (dependencies + factory) that builds it.
//   - Multibindings: independent providers contributing to one collection per type.
//   - Lazy components: deferred installers, expanded transitively.
//   - Binding compressions: interface→implementation indirections folded into
//     a single allocation when provably safe.
//
// Passes, leaves first:
//
//	expand/     flatten lazily installed components, detect installation loops
//	normalize/  deduplicate and validate bindings, plan allocations, compress
//	multibind/  merge multibinding providers per type
//	depgraph/   order construction, detect dependency loops
//
// Resolve runs them in order on a component.Storage and returns a Result, or
// the first fatal configuration error. There is no partial result: a
// consistent binding table is a precondition for constructing anything.
// MustResolve reports the error on stderr and exits, for programs that want
// to fail fast at startup.
//
// Quick example:
//
//	s := component.NewStorage(component.Named("app"))
//	s.Install(component.Lazy(installServer))
//	res, err := injgraph.Resolve(s, injgraph.WithLogger(logger))
//
// Supporting packages:
//
//	component/   erased descriptors: TypeID, BindingData, LazyComponent, Storage
//	allocator/   fixed-size arena plan
//	manifest/    YAML description of a component graph
//	inspect/     text/JSON report of a Result, HTTP router
//	cmd/injgraph command-line resolver
package injgraph
