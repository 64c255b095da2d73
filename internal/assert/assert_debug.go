//go:build debug

package assert

import "fmt"

// Invariant panics when ok is false. It is only active in builds tagged
// with "debug"; production builds compile it to a no-op.
//
// Use it for conditions the resolution passes establish themselves
// (e.g. "both ends of a compression edge are bound"), never for
// validating caller input.
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("injgraph: invariant violation: %s", msg))
	}
}
