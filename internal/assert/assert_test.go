//go:build debug

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariant(t *testing.T) {
	t.Run("holds", func(t *testing.T) {
		assert.NotPanics(t, func() { Invariant(true, "never shown") })
	})

	t.Run("violated", func(t *testing.T) {
		assert.PanicsWithValue(t,
			"injgraph: invariant violation: interface binding must not need allocation",
			func() { Invariant(false, "interface binding must not need allocation") },
		)
	})
}
