package manifest

import (
	"github.com/katalvlaran/injgraph/internal/diag"
)

// Sentinel errors reported by Parse and Validate.
var (
	ErrEmptyManifest    = diag.NewError("manifest is empty")
	ErrNoToplevel       = diag.NewError("manifest has no top-level component")
	ErrEmptyName        = diag.NewError("component has no name")
	ErrDuplicateName    = diag.NewError("component declared more than once")
	ErrUnknownComponent = diag.NewError("unknown component")
	ErrEmptyType        = diag.NewError("declaration has no type")
)

// Document is a parsed manifest.
type Document struct {
	Toplevel   string                `yaml:"toplevel"`
	Types      map[string]TypeLayout `yaml:"types,omitempty"`
	Components []Component           `yaml:"components"`
}

// TypeLayout gives the layout of a type for the allocator plan.
type TypeLayout struct {
	Size  uintptr `yaml:"size"`
	Align uintptr `yaml:"align"`
}

// Component is one named component specification.
type Component struct {
	Name          string         `yaml:"name"`
	Exposes       []string       `yaml:"exposes,omitempty"`
	Installs      []string       `yaml:"installs,omitempty"`
	Bindings      []Binding      `yaml:"bindings,omitempty"`
	Multibindings []Multibinding `yaml:"multibindings,omitempty"`
	Compressions  []Compression  `yaml:"compressions,omitempty"`
}

// Binding declares the recipe of a type, or an instance supplied from outside.
type Binding struct {
	Type string   `yaml:"type"`
	Deps []string `yaml:"deps,omitempty"`

	// Instance marks an already constructed object.
	Instance bool `yaml:"instance,omitempty"`

	// External marks a recipe whose instance the engine does not allocate.
	External bool `yaml:"external,omitempty"`
}

// Multibinding declares one provider of a type's collection.
type Multibinding struct {
	Type     string   `yaml:"type"`
	Deps     []string `yaml:"deps,omitempty"`
	External bool     `yaml:"external,omitempty"`
}

// Compression declares that Interface only forwards to Class, and that Class
// can be built in Interface's slot from Deps.
type Compression struct {
	Class     string   `yaml:"class"`
	Interface string   `yaml:"interface"`
	Deps      []string `yaml:"deps,omitempty"`
}
