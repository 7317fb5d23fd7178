package diagfmt

import (
	"fmt"
	"io"

	"github.com/whiskeyo/meksmith/internal/ast"
)

// DumpModule prints the parsed module as an indented tree for the parse
// command. The dump is a debugging aid, not a stable format.
func DumpModule(w io.Writer, m *ast.Module) {
	fmt.Fprintf(w, "module (%d declarations)\n", len(m.Decls))
	for i := range m.Decls {
		dumpDecl(w, &m.Decls[i])
	}
}

func dumpDecl(w io.Writer, d *ast.Decl) {
	fmt.Fprintf(w, "  %s %s\n", d.Kind, d.Name)
	switch d.Kind {
	case ast.DeclEnum:
		for _, f := range d.EnumFields {
			if f.IsRange {
				fmt.Fprintf(w, "    %s = %d..%d\n", f.Name, f.Lo, f.Hi)
			} else {
				fmt.Fprintf(w, "    %s = %d\n", f.Name, f.Lo)
			}
		}
	case ast.DeclStruct:
		for _, f := range d.StructFields {
			fmt.Fprintf(w, "    %s: %s", f.Name, f.Type)
			for _, a := range f.Attrs {
				fmt.Fprintf(w, " [%s]", attrString(a))
			}
			fmt.Fprintln(w)
		}
	case ast.DeclUnion:
		for _, f := range d.UnionFields {
			if f.IsRange {
				fmt.Fprintf(w, "    %d..%d => %s: %s\n", f.Lo, f.Hi, f.Name, f.Type)
			} else {
				fmt.Fprintf(w, "    %d => %s: %s\n", f.Lo, f.Name, f.Type)
			}
		}
	case ast.DeclAlias:
		fmt.Fprintf(w, "    = %s\n", d.Alias)
	}
}

func attrString(a ast.Attr) string {
	switch a.Kind {
	case ast.AttrDiscriminatedBy:
		return fmt.Sprintf("discriminated_by=%s", a.Field)
	case ast.AttrBits:
		return fmt.Sprintf("bits=%d", a.Size)
	case ast.AttrBytes:
		return fmt.Sprintf("bytes=%d", a.Size)
	}
	return "unknown"
}
