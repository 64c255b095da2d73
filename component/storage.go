package component

// Storage is the mutable working set of one container construction.
//
// The top-level component seeds it; every lazy component expanded later
// appends to the same slices. The resolution passes consume it exactly once.
type Storage struct {
	// Toplevel identifies the top-level component, for diagnostics.
	Toplevel TypeID

	// Bindings holds raw binding declarations, duplicates included.
	Bindings []Binding

	// CompressedBindings holds compression candidates.
	CompressedBindings []CompressedBinding

	// Multibindings holds raw multibinding providers.
	Multibindings []Multibinding

	// Exposed lists the types of the top-level component's public signature.
	Exposed []TypeID

	// LazyComponents is the work-list of components still to expand.
	// A nil entry marks where the expansion of a component completes;
	// only the expander pushes such entries.
	LazyComponents []LazyComponent
}

// NewStorage returns an empty Storage for the given top-level component.
func NewStorage(toplevel TypeID) *Storage {
	return &Storage{Toplevel: toplevel}
}

// AddBinding declares the recipe for t.
func (s *Storage) AddBinding(t TypeID, data BindingData) {
	s.Bindings = append(s.Bindings, Binding{Type: t, Data: data})
}

// AddCompressedBinding declares that iface is a pure forwarding binding to
// class, and that data builds class directly in iface's slot.
func (s *Storage) AddCompressedBinding(class, iface TypeID, data BindingData) {
	s.CompressedBindings = append(s.CompressedBindings, CompressedBinding{
		ClassID:     class,
		InterfaceID: iface,
		Data:        data,
	})
}

// AddMultibinding declares one provider contributing to t's collection.
func (s *Storage) AddMultibinding(t TypeID, data MultibindingData) {
	s.Multibindings = append(s.Multibindings, Multibinding{Type: t, Data: data})
}

// Install schedules c for expansion. Installs are expanded in the order they
// were made; installs made while expanding a component are expanded before
// that component's next sibling. Installing nil has no effect.
func (s *Storage) Install(c LazyComponent) {
	if c == nil {
		return
	}
	s.LazyComponents = append(s.LazyComponents, c)
}

// Expose adds types to the public signature.
func (s *Storage) Expose(types ...TypeID) {
	s.Exposed = append(s.Exposed, types...)
}
