package normalize_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/injgraph/allocator"
	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/diag"
	"github.com/katalvlaran/injgraph/normalize"
)

var (
	typeA = component.NamedSized("A", 8, 8)
	typeB = component.NamedSized("B", 8, 8)
	typeC = component.NamedSized("C", 8, 8)
	typeI = component.Named("I")
	typeX = component.NamedSized("X", 8, 8)
)

func newA(args []any) any { return "a" }
func newB(args []any) any { return "b" }
func newC(args []any) any { return "c" }

func deps(ids ...component.TypeID) []component.TypeID { return ids }

// normalizeBindings runs NormalizeBindings without compression inputs.
func normalizeBindings(t *testing.T, bindings []component.Binding) ([]component.Binding, *allocator.Data, error) {
	t.Helper()
	alloc := allocator.New()
	out, info, err := normalize.NormalizeBindings(bindings, alloc, nil, nil, nil)
	if err == nil {
		assert.Empty(t, info)
	}

	return out, alloc, err
}

// TestNormalize_Empty verifies empty input yields an empty table.
func TestNormalize_Empty(t *testing.T) {
	out, alloc, err := normalizeBindings(t, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, uintptr(0), alloc.TotalSize())
}

// TestNormalize_ConsistentDuplicates verifies equal duplicates collapse into one entry.
func TestNormalize_ConsistentDuplicates(t *testing.T) {
	a := component.NewBinding(newA, deps(typeB), true)
	b := component.NewBinding(newB, nil, true)
	out, _, err := normalizeBindings(t, []component.Binding{
		{Type: typeA, Data: a},
		{Type: typeB, Data: b},
		{Type: typeA, Data: component.NewBinding(newA, deps(typeB), true)},
	})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, typeA, out[0].Type)
	assert.True(t, out[0].Data.Equal(a))
	assert.Equal(t, typeB, out[1].Type)
}

// TestNormalize_InconsistentDuplicates verifies a conflicting duplicate is never silently resolved.
func TestNormalize_InconsistentDuplicates(t *testing.T) {
	cases := []struct {
		name      string
		first     component.BindingData
		duplicate component.BindingData
	}{
		{"different factory", component.NewBinding(newA, nil, true), component.NewBinding(newB, nil, true)},
		{"different deps", component.NewBinding(newA, deps(typeB), true), component.NewBinding(newA, deps(typeC), true)},
		{"created vs recipe", component.Created(&struct{}{}), component.NewBinding(newA, nil, true)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := normalizeBindings(t, []component.Binding{
				{Type: typeB, Data: component.NewBinding(newB, nil, true)},
				{Type: typeA, Data: tc.first},
				{Type: typeA, Data: tc.duplicate},
			})
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, normalize.ErrInconsistentBinding))

			var conflict *normalize.ConflictError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, typeA, conflict.Type)
			assert.True(t, conflict.Existing.Equal(tc.first))
			assert.True(t, conflict.Duplicate.Equal(tc.duplicate))
			assert.True(t, strings.HasPrefix(err.Error(), "Fatal injection error: the type A was provided more than once"))
			assert.True(t, strings.HasSuffix(err.Error(), string(diag.KeyType)+": A"))
		})
	}
}

// TestNormalize_AllocatorCountsRawDeclarations verifies accounting happens
// before deduplication.
func TestNormalize_AllocatorCountsRawDeclarations(t *testing.T) {
	obj := &struct{}{}
	out, alloc, err := normalizeBindings(t, []component.Binding{
		{Type: typeA, Data: component.NewBinding(newA, nil, true)},
		{Type: typeA, Data: component.NewBinding(newA, nil, true)},
		{Type: typeA, Data: component.NewBinding(newA, nil, true)},
		{Type: typeB, Data: component.Created(obj)},
		{Type: typeB, Data: component.Created(obj)},
		{Type: typeC, Data: component.NewBinding(newC, nil, false)},
	})
	require.NoError(t, err)

	assert.Len(t, out, 3)
	assert.Equal(t, 3, alloc.Count(typeA))
	assert.Equal(t, 0, alloc.Count(typeB))
	assert.Equal(t, 2, alloc.ExternalCount(typeB))
	assert.Equal(t, 1, alloc.ExternalCount(typeC))
	assert.Equal(t, 3*allocator.MaximumRequiredSpace(typeA), alloc.TotalSize())
}

// TestNormalize_NilAllocator verifies accounting is optional.
func TestNormalize_NilAllocator(t *testing.T) {
	out, _, err := normalize.NormalizeBindings(
		[]component.Binding{{Type: typeA, Data: component.NewBinding(newA, nil, true)}},
		nil, nil, nil, nil,
	)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// TestNormalize_InputNotModified verifies the caller's slice is left intact.
func TestNormalize_InputNotModified(t *testing.T) {
	in := []component.Binding{
		{Type: typeB, Data: component.NewBinding(newB, nil, true)},
		{Type: typeA, Data: component.NewBinding(newA, deps(typeB), true)},
		{Type: typeB, Data: component.NewBinding(newB, nil, true)},
	}
	snapshot := append([]component.Binding(nil), in...)
	_, _, err := normalizeBindings(t, in)
	require.NoError(t, err)
	assert.Equal(t, len(snapshot), len(in))
	for i := range in {
		assert.Equal(t, snapshot[i].Type, in[i].Type)
	}
}
