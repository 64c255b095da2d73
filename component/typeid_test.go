package component_test

import (
	"sort"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/injgraph/component"
)

type widget struct {
	a int64
	b byte
}

// TestTypeOf_NamedType verifies package-qualified naming and size/alignment capture.
func TestTypeOf_NamedType(t *testing.T) {
	id := component.TypeOf[widget]()
	assert.Equal(t, "github.com/katalvlaran/injgraph/component_test.widget", id.String())
	assert.Equal(t, unsafe.Sizeof(widget{}), id.Size())
	assert.Equal(t, unsafe.Alignof(widget{}), id.Align())
	assert.Equal(t, id, component.TypeOf[widget]())
	assert.NotEqual(t, id, component.TypeOf[*widget]())
}

// TestTypeOfValue covers dynamic types and nil.
func TestTypeOfValue(t *testing.T) {
	assert.Equal(t, component.TypeOf[*widget](), component.TypeOfValue(&widget{}))
	assert.True(t, component.TypeOfValue(nil).IsZero())
	assert.Equal(t, "<nil>", component.TypeOfValue(nil).String())
}

// TestNamed covers name-only tokens and the alignment default.
func TestNamed(t *testing.T) {
	a := component.Named("A")
	assert.Equal(t, "A", a.Name())
	assert.Equal(t, uintptr(0), a.Size())
	assert.Equal(t, uintptr(1), a.Align())
	assert.Equal(t, a, component.NamedSized("A", 0, 0))
	assert.NotEqual(t, a, component.NamedSized("A", 8, 8))
	assert.False(t, a.IsZero())
}

// TestCompare_TotalOrder verifies sorting by name, then size, then alignment.
func TestCompare_TotalOrder(t *testing.T) {
	ids := []component.TypeID{
		component.NamedSized("B", 4, 4),
		component.Named("C"),
		component.NamedSized("B", 4, 2),
		component.Named("A"),
		component.NamedSized("B", 1, 1),
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	assert.Equal(t, []component.TypeID{
		component.Named("A"),
		component.NamedSized("B", 1, 1),
		component.NamedSized("B", 4, 2),
		component.NamedSized("B", 4, 4),
		component.Named("C"),
	}, ids)
	assert.Equal(t, 0, component.Compare(component.Named("X"), component.Named("X")))
	assert.Equal(t, -1, component.Compare(component.Named("X"), component.Named("Y")))
	assert.Equal(t, 1, component.Compare(component.Named("Y"), component.Named("X")))
}
