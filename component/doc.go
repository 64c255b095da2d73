// Package component defines the erased descriptors the resolution passes
// operate on: type tokens, binding recipes, multibinding providers,
// compression candidates, lazily-installed components, and the mutable
// Storage they are accumulated into.
//
// What:
//
//   - TypeID: opaque, totally ordered, hashable type token.
//   - BindingData: either an already constructed object or a recipe
//     (dependency list + factory) for one instance of a type.
//   - MultibindingData: one independent provider contributing to the
//     collection of a type, plus the shared "get all" accessor.
//   - CompressedBinding: a candidate interface→implementation fold.
//   - LazyComponent: a deferred installer, identified by content
//     (installer function + arguments), never by descriptor address.
//   - Storage: the working set a top-level component and its lazy
//     components add their declarations to.
//
// Nothing in this package resolves anything; see packages expand,
// normalize and multibind for the passes, and the root injgraph package
// for the pipeline that runs them in order.
//
// Example:
//
//	func installDB(s *component.Storage) {
//	    s.AddBinding(component.TypeOf[*DB](), component.NewBinding(newDB, nil, true))
//	}
//
//	s := component.NewStorage(component.Named("app"))
//	s.Install(component.Lazy(installDB))
package component
