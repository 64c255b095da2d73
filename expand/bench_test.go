package expand_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/expand"
)

// BenchmarkExpand_Layered measures expansion of a layered install graph where
// every component of layer i installs every component of layer i+1, so most
// installs hit the fully-expanded set.
func BenchmarkExpand_Layered(b *testing.B) {
	const layers, width = 20, 10
	g := make(installGraph, layers*width)
	for l := 0; l < layers-1; l++ {
		for w := 0; w < width; w++ {
			children := make([]string, width)
			for k := range children {
				children[k] = fmt.Sprintf("L%d_%d", l+1, k)
			}
			g[fmt.Sprintf("L%d_%d", l, w)] = children
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := component.NewStorage(component.Named("Bench"))
		s.Install(component.LazyWith(installNode, node{g: &g, name: "L0_0"}))
		if err := expand.ExpandLazyComponents(s, s.Toplevel); err != nil {
			b.Fatal(err)
		}
	}
}
