// Package diag holds the error namespace and the structured error keys
// shared by the resolution passes.
package diag

import (
	"strings"

	"github.com/ygrebnov/errorc"
)

// Namespace prefixes every sentinel error and structured key.
const Namespace = "injgraph"

// Key is a structured error field key, rendered as "key: value" by
// errorc.With.
type Key string

// NewError returns a sentinel error in the injgraph namespace.
func NewError(msg string) error {
	return errorc.New(Namespace + ": " + msg)
}

// newKey joins the namespace, the segments and name with dots.
func newKey(name string, segments ...string) Key {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, Namespace)
	parts = append(parts, segments...)

	return Key(strings.Join(append(parts, name), "."))
}

const (
	keySegmentBinding   = "binding"
	keySegmentComponent = "component"
	keySegmentManifest  = "manifest"
)

// Structured error field keys.
var (
	KeyType      = newKey("type", keySegmentBinding)      // injgraph.binding.type
	KeyDep       = newKey("dep", keySegmentBinding)       // injgraph.binding.dep
	KeyComponent = newKey("name", keySegmentComponent)    // injgraph.component.name
	KeyInstall   = newKey("install", keySegmentComponent) // injgraph.component.install
	KeyPath      = newKey("path", keySegmentManifest)     // injgraph.manifest.path
	KeyIndex     = newKey("index", keySegmentManifest)    // injgraph.manifest.index
)
