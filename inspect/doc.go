// Package inspect renders a resolution result for people: a plain-text
// report for terminals and a small read-only JSON API for tooling.
//
// The HTTP routes, all GET:
//
//	/report          the whole Report
//	/bindings        the normalized binding table
//	/multibindings   the merged collections
//	/compressions    the applied compressions
//	/allocator       the allocation plan
//	/order           the construction order
package inspect
