package depgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/depgraph"
	"github.com/katalvlaran/injgraph/internal/diag"
)

func build(args []any) any { return nil }

var (
	typeA = component.Named("A")
	typeB = component.Named("B")
	typeC = component.Named("C")
	typeD = component.Named("D")
	typeE = component.Named("E")
)

func recipe(t component.TypeID, deps ...component.TypeID) component.Binding {
	return component.Binding{Type: t, Data: component.NewBinding(build, deps, true)}
}

// indexIn returns the position of t in order, failing the test when absent.
func indexIn(t *testing.T, order []component.TypeID, id component.TypeID) int {
	t.Helper()
	for i, x := range order {
		if x == id {
			return i
		}
	}
	t.Fatalf("%s missing from %v", id, order)

	return -1
}

// TestTopologicalOrder_Diamond checks dependencies precede dependents.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func TestTopologicalOrder_Diamond(t *testing.T) {
	bindings := []component.Binding{
		recipe(typeA, typeB, typeC),
		recipe(typeB, typeD),
		recipe(typeC, typeD),
		recipe(typeD),
	}
	order, err := depgraph.Build(bindings).TopologicalOrder()
	require.NoError(t, err)

	assert.Equal(t, []component.TypeID{typeD, typeB, typeC, typeA}, order)
	for _, b := range bindings {
		for _, d := range b.Data.Deps() {
			assert.Less(t, indexIn(t, order, d), indexIn(t, order, b.Type))
		}
	}
}

// TestTopologicalOrder_Independent checks independent types keep table order.
func TestTopologicalOrder_Independent(t *testing.T) {
	order, err := depgraph.Build([]component.Binding{recipe(typeC), recipe(typeA), recipe(typeB)}).TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []component.TypeID{typeC, typeA, typeB}, order)
}

// TestTopologicalOrder_CreatedAndUnbound checks created bindings are leaves
// and unbound dependencies are skipped.
func TestTopologicalOrder_CreatedAndUnbound(t *testing.T) {
	g := depgraph.Build([]component.Binding{
		recipe(typeA, typeB, typeE),
		{Type: typeB, Data: component.Created(&struct{}{})},
	})
	order, err := g.TopologicalOrder()
	require.NoError(t, err)

	assert.Equal(t, []component.TypeID{typeB, typeA}, order)
	assert.Equal(t, []component.TypeID{typeE}, g.Unbound())
	assert.Equal(t, []component.TypeID{typeA}, g.Dependents(typeE))
}

// TestTopologicalOrder_Loop checks the loop path is closed on its start and
// the closing edge is attached to the error.
func TestTopologicalOrder_Loop(t *testing.T) {
	g := depgraph.Build([]component.Binding{
		recipe(typeA, typeB),
		recipe(typeB, typeC),
		recipe(typeC, typeD, typeB),
		recipe(typeD),
	})
	order, err := g.TopologicalOrder()
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, depgraph.ErrDependencyLoop))

	var loop *depgraph.LoopError
	require.True(t, errors.As(err, &loop))
	assert.Equal(t, []component.TypeID{typeB, typeC, typeB}, loop.Path)
	assert.Equal(t, "Found a dependency loop: B -> C -> B", loop.Error())
	assert.Equal(t, loop.Error()+", "+string(diag.KeyType)+": C, "+string(diag.KeyDep)+": B", err.Error())
	assert.Equal(t, [][]component.TypeID{loop.Path}, g.Cycles())
}

// TestTopologicalOrder_SelfDependency checks a type depending on itself.
func TestTopologicalOrder_SelfDependency(t *testing.T) {
	g := depgraph.Build([]component.Binding{recipe(typeA, typeA)})
	_, err := g.TopologicalOrder()
	assert.ErrorIs(t, err, depgraph.ErrDependencyLoop)
	assert.Equal(t, [][]component.TypeID{{typeA, typeA}}, g.Cycles())
}

// TestCycles covers acyclic graphs and several distinct loops.
func TestCycles(t *testing.T) {
	assert.Nil(t, depgraph.Build([]component.Binding{recipe(typeA, typeB), recipe(typeB)}).Cycles())

	g := depgraph.Build([]component.Binding{
		recipe(typeC, typeD),
		recipe(typeD, typeC),
		recipe(typeA, typeB),
		recipe(typeB, typeA),
	})
	assert.Equal(t, [][]component.TypeID{
		{typeA, typeB, typeA},
		{typeC, typeD, typeC},
	}, g.Cycles())
}

// TestGraph_Queries covers Build deduplication and the read accessors.
func TestGraph_Queries(t *testing.T) {
	g := depgraph.Build([]component.Binding{
		recipe(typeA, typeC),
		recipe(typeB, typeC),
		recipe(typeA, typeB),
		recipe(typeC),
	})

	assert.Equal(t, []component.TypeID{typeA, typeB}, g.Dependents(typeC))
	assert.Nil(t, g.Dependents(typeA))
	assert.Nil(t, g.Dependents(typeE))
	assert.Empty(t, g.Unbound())

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []component.TypeID{typeC, typeA, typeB}, order)
}
