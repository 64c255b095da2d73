package manifest

import (
	"strconv"

	"github.com/ygrebnov/errorc"
	"go.uber.org/multierr"

	"github.com/katalvlaran/injgraph/internal/diag"
)

// Validate checks the document's structure and reports every problem found,
// combined with multierr. Resolution problems (conflicting bindings,
// installation loops) are not structural and are left to the resolver.
func (d *Document) Validate() error {
	var errs error

	// 1. Component names
	names := make(map[string]bool, len(d.Components))
	for i, c := range d.Components {
		if c.Name == "" {
			errs = multierr.Append(errs, errorc.With(ErrEmptyName, errorc.Int(diag.KeyIndex, i)))
			continue
		}
		if names[c.Name] {
			errs = multierr.Append(errs, errorc.With(ErrDuplicateName, errorc.String(diag.KeyComponent, c.Name)))
		}
		names[c.Name] = true
	}

	// 2. Top-level component
	switch {
	case d.Toplevel == "":
		errs = multierr.Append(errs, ErrNoToplevel)
	case !names[d.Toplevel]:
		errs = multierr.Append(errs, errorc.With(ErrUnknownComponent, errorc.String(diag.KeyComponent, d.Toplevel)))
	}

	// 3. Installs and declarations
	for _, c := range d.Components {
		for _, in := range c.Installs {
			if !names[in] {
				errs = multierr.Append(errs, errorc.With(ErrUnknownComponent,
					errorc.String(diag.KeyComponent, c.Name),
					errorc.String(diag.KeyInstall, in)))
			}
		}
		errs = multierr.Append(errs, c.validateDeclarations())
	}

	return errs
}

func (c *Component) validateDeclarations() error {
	var errs error
	missing := func(kind string, i int) {
		errs = multierr.Append(errs, errorc.With(ErrEmptyType,
			errorc.String(diag.KeyComponent, c.Name),
			errorc.String(diag.KeyIndex, kind+"["+strconv.Itoa(i)+"]")))
	}
	for i, b := range c.Bindings {
		if b.Type == "" {
			missing("bindings", i)
		}
	}
	for i, m := range c.Multibindings {
		if m.Type == "" {
			missing("multibindings", i)
		}
	}
	for i, cb := range c.Compressions {
		if cb.Class == "" || cb.Interface == "" {
			missing("compressions", i)
		}
	}

	return errs
}
