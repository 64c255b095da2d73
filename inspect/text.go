package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText prints r as aligned plain-text sections.
func WriteText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "BINDINGS (%d)\n", len(r.Bindings))
	for _, b := range r.Bindings {
		kind := "recipe"
		switch {
		case b.Created:
			kind = "instance"
		case !b.NeedsAllocation:
			kind = "external"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", b.Type, kind, joinDeps(b.Deps))
	}

	fmt.Fprintf(tw, "\nMULTIBINDINGS (%d)\n", len(r.Multibindings))
	for _, m := range r.Multibindings {
		for i, p := range m.Providers {
			fmt.Fprintf(tw, "  %s\t#%d\t%s\n", m.Type, i, joinDeps(p.Deps))
		}
	}

	fmt.Fprintf(tw, "\nCOMPRESSIONS (%d)\n", len(r.Compressions))
	for _, c := range r.Compressions {
		fmt.Fprintf(tw, "  %s\t->\t%s\n", c.Class, c.Interface)
	}

	a := r.Allocator
	fmt.Fprintf(tw, "\nALLOCATOR (%d bytes, %d allocated, %d external)\n", a.TotalSize, a.Allocated, a.External)
	for _, s := range a.Types {
		fmt.Fprintf(tw, "  %s\t%d/%d\tx%d\text %d\n", s.Type, s.Size, s.Align, s.Count, s.External)
	}

	if len(r.Order) > 0 {
		fmt.Fprintf(tw, "\nCONSTRUCTION ORDER\n")
		for i, t := range r.Order {
			fmt.Fprintf(tw, "  %d\t%s\n", i+1, t)
		}
	}

	return tw.Flush()
}

func joinDeps(deps []string) string {
	if len(deps) == 0 {
		return "-"
	}

	return strings.Join(deps, ", ")
}
