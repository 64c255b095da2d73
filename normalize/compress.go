package normalize

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/assert"
)

// candidate is a compression candidate keyed by its class type.
type candidate struct {
	iface component.TypeID
	data  component.BindingData
}

// compressor prunes and applies compression candidates over a binding table.
type compressor struct {
	table *bindingTable
	log   *zap.Logger

	// byClass maps C to (I, recipe). A later candidate for the same C
	// replaces the earlier one; two interfaces folding into the same C
	// are caught by the shared-dependency rule.
	byClass map[component.TypeID]candidate
	order   []component.TypeID
}

func (c *compressor) collect(compressed []component.CompressedBinding) {
	c.byClass = make(map[component.TypeID]candidate, len(compressed))
	c.order = make([]component.TypeID, 0, len(compressed))
	for _, cb := range compressed {
		if _, dup := c.byClass[cb.ClassID]; !dup {
			c.order = append(c.order, cb.ClassID)
		}
		c.byClass[cb.ClassID] = candidate{iface: cb.InterfaceID, data: cb.Data}
	}
}

// drop removes the candidate for class, logging why.
func (c *compressor) drop(class component.TypeID, reason string, fields ...zap.Field) {
	if _, ok := c.byClass[class]; !ok {
		return
	}
	delete(c.byClass, class)
	c.log.Debug("ignoring compressed binding",
		append([]zap.Field{zap.Stringer("class", class), zap.String("reason", reason)}, fields...)...)
}

// excludeMultibindingDeps drops C when a multibinding provider depends on it:
// multibindings resolve through the concrete type.
func (c *compressor) excludeMultibindingDeps(multibindings []component.Multibinding) {
	for _, mb := range multibindings {
		for _, dep := range mb.Data.Deps {
			c.drop(dep, "dependency of a multibinding", zap.Stringer("multibinding", mb.Type))
		}
	}
}

// excludeExposed drops C when it is part of the public signature.
func (c *compressor) excludeExposed(exposed []component.TypeID) {
	for _, t := range exposed {
		c.drop(t, "exposed type")
	}
}

// excludeSharedDeps drops C when a bound type X other than its interface
// depends on it.
func (c *compressor) excludeSharedDeps() {
	for _, x := range c.table.order {
		data := c.table.data[x]
		if data.IsCreated() {
			continue
		}
		for _, dep := range data.Deps() {
			if cand, ok := c.byClass[dep]; ok && cand.iface != x {
				c.drop(dep, "depended on by another type", zap.Stringer("dependent", x))
			}
		}
	}
}

// apply folds every surviving candidate and returns the compression records.
func (c *compressor) apply() BindingCompressionInfoMap {
	info := make(BindingCompressionInfoMap, len(c.byClass))
	for _, class := range c.order {
		cand, ok := c.byClass[class]
		if !ok {
			continue
		}
		iData, iBound := c.table.data[cand.iface]
		cData, cBound := c.table.data[class]
		assert.Invariant(iBound, "compressed interface "+cand.iface.String()+" is not bound")
		assert.Invariant(cBound, "compressed class "+class.String()+" is not bound")
		if !iBound || !cBound {
			continue
		}
		// I only forwards to C: C is the one allocated, even though I remains.
		assert.Invariant(!iData.NeedsAllocation(), "compressed interface "+cand.iface.String()+" needs allocation")

		info[class] = BindingCompressionInfo{
			InterfaceID:      cand.iface,
			InterfaceBinding: iData,
			ClassBinding:     cData,
		}
		c.table.data[cand.iface] = cand.data
		delete(c.table.data, class)

		c.log.Debug("performing binding compression",
			zap.Stringer("interface", cand.iface), zap.Stringer("class", class))
	}

	return info
}
