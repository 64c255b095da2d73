//go:build !debug

package assert

// Invariant is a no-op in production builds.
func Invariant(ok bool, msg string) {}
