//go:build !debug

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariant_Disabled(t *testing.T) {
	assert.NotPanics(t, func() { Invariant(false, "ignored without the debug tag") })
}
