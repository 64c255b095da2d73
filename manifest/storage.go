package manifest

import (
	"github.com/katalvlaran/injgraph/component"
)

// Instance is the object bound by an "instance: true" declaration. Two
// declarations of the same type yield equal instances.
type Instance struct {
	Type string
}

// build is the factory of every manifest recipe. It hands back the
// dependency instances it receives.
func build(args []any) any { return args }

// index resolves component names of one document.
type index struct {
	doc    *Document
	byName map[string]*Component
	gets   map[string]component.GetMultibindingsFunc
}

// ref is the argument of installComponent; with it, (index, name) is the
// identity of a lazily installed component.
type ref struct {
	idx  *index
	name string
}

func (r ref) String() string { return r.name }

// Storage validates the document and returns a storage seeded with the
// top-level component. Installed components are expanded lazily.
func (d *Document) Storage() (*component.Storage, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	idx := &index{
		doc:    d,
		byName: make(map[string]*Component, len(d.Components)),
		gets:   make(map[string]component.GetMultibindingsFunc),
	}
	for i := range d.Components {
		idx.byName[d.Components[i].Name] = &d.Components[i]
	}

	top := idx.byName[d.Toplevel]
	s := component.NewStorage(component.Named(d.Toplevel))
	for _, t := range top.Exposes {
		s.Expose(idx.typeID(t))
	}
	idx.apply(s, top)

	return s, nil
}

// installComponent adds the declarations of the referenced component.
func installComponent(s *component.Storage, r ref) {
	r.idx.apply(s, r.idx.byName[r.name])
}

func (x *index) apply(s *component.Storage, c *Component) {
	for _, b := range c.Bindings {
		s.AddBinding(x.typeID(b.Type), x.bindingData(b))
	}
	for _, m := range c.Multibindings {
		s.AddMultibinding(x.typeID(m.Type), component.MultibindingData{
			Create:          build,
			Deps:            x.typeIDs(m.Deps),
			NeedsAllocation: !m.External,
			GetAll:          x.getAll(m.Type),
		})
	}
	for _, cb := range c.Compressions {
		s.AddCompressedBinding(x.typeID(cb.Class), x.typeID(cb.Interface),
			component.NewBinding(build, x.typeIDs(cb.Deps), true))
	}
	for _, name := range c.Installs {
		s.Install(component.LazyWith(installComponent, ref{idx: x, name: name}))
	}
}

func (x *index) bindingData(b Binding) component.BindingData {
	if b.Instance {
		return component.Created(Instance{Type: b.Type})
	}

	return component.NewBinding(build, x.typeIDs(b.Deps), !b.External)
}

// getAll returns the accessor shared by every provider of a type.
func (x *index) getAll(name string) component.GetMultibindingsFunc {
	if fn, ok := x.gets[name]; ok {
		return fn
	}
	fn := func() []any { return nil }
	x.gets[name] = fn

	return fn
}

func (x *index) typeID(name string) component.TypeID {
	if layout, ok := x.doc.Types[name]; ok {
		return component.NamedSized(name, layout.Size, layout.Align)
	}

	return component.Named(name)
}

func (x *index) typeIDs(names []string) []component.TypeID {
	if len(names) == 0 {
		return nil
	}
	ids := make([]component.TypeID, len(names))
	for i, n := range names {
		ids[i] = x.typeID(n)
	}

	return ids
}
