package component

// GetMultibindingsFunc is the "get all instances" accessor of a
// multibinding type. Every provider of the same type carries the same
// accessor; the merger keeps a single copy per type.
type GetMultibindingsFunc func() []any

// MultibindingData is one provider contribution for a type.
type MultibindingData struct {
	// Create builds the contributed instance.
	Create Factory

	// Deps lists the provider's dependencies, nil when it has none.
	Deps []TypeID

	// NeedsAllocation is false for contributions supplied from outside.
	NeedsAllocation bool

	// GetAll is the accessor shared by all providers of the type.
	GetAll GetMultibindingsFunc
}

// Multibinding is one raw (type, provider) declaration.
type Multibinding struct {
	Type TypeID
	Data MultibindingData
}

// CompressedBinding is a compression candidate: InterfaceID is bound only
// to forward to ClassID, and Data is the recipe that builds ClassID
// directly in InterfaceID's slot. If the fold turns out to be safe, the
// interface takes Data and the class binding disappears.
type CompressedBinding struct {
	ClassID     TypeID
	InterfaceID TypeID
	Data        BindingData
}
