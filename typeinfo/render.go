package typeinfo

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/gircheck/classify"
	"github.com/teranos/gircheck/codewriter"
	"github.com/teranos/gircheck/exclude"
	"github.com/teranos/gircheck/gir"
	"github.com/teranos/gircheck/gtype"
)

// RegisteredNamespace is the pseudo-namespace the registry is emitted as.
const RegisteredNamespace = "registered"

const commonIncludes = `#include "girtypes.h"
#include <glib-2.0/glib-object.h>`

// Unit is one generated source file together with the declarations it
// contributes to the shared build, header and driver outputs.
type Unit struct {
	FileName string
	Source   []byte
	// Packages are the pkg-config modules required by the file, sorted
	Packages []string
	// Function is the C entry point called by the driver
	Function string
	// Label names the unit in the driver's progress line
	Label string
	// Prototype is the declaration written to the header
	Prototype string
	// Rows counts the generated rows
	Rows int
}

// Renderer turns namespaces into Units. It holds no mutable state and may
// be shared between goroutines.
type Renderer struct {
	Registry *gtype.Registry
	Format   Format
	Exclude  exclude.Sets
	// Banner is written as a comment at the top of each file; empty for none
	Banner     string
	IndentUnit int
}

func (r *Renderer) newWriter(style codewriter.CommentStyle) *codewriter.Writer {
	opts := []codewriter.Option{codewriter.WithBanner(r.Banner)}
	if r.IndentUnit > 0 {
		opts = append(opts, codewriter.WithIndentUnit(r.IndentUnit))
	}
	return codewriter.New(style, opts...)
}

// SourceName is the generated file name for a .gir input, e.g.
// Gtk-3.0.gir → Gtk-3.0.c.
func SourceName(girPath string) string {
	base := filepath.Base(girPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".c"
}

// CtypesName is the generated file name of the unregistered c-type pass.
func CtypesName(girPath string) string {
	return strings.TrimSuffix(SourceName(girPath), ".c") + "_ctypes.c"
}

// Namespace renders the registered types of ns into fileName.
func (r *Renderer) Namespace(ns *gir.Namespace, fileName string) (Unit, error) {
	w := r.newWriter(codewriter.CommentC)
	w.WriteNewline()
	w.WriteLine(commonIncludes)
	for _, inc := range sortedUnique(ns.CIncludes) {
		line := fmt.Sprintf(`#include "%s"`, inc)
		if r.Exclude.IsHeaderExcluded(inc) {
			w.WriteComment(line)
		} else {
			w.WriteLine(line)
		}
	}
	w.WriteNewline()

	fn := fmt.Sprintf("print_%s_types", ns.Name)
	w.WriteLine("void " + fn + "()")

	rows := 0
	err := w.Scope("function", func() error {
		rows = r.writeNodes(w, classify.New(r.Registry, false), ns.Name, ns.TypeNames.Entries())
		return nil
	})
	if err != nil {
		return Unit{}, err
	}

	return Unit{
		FileName:  fileName,
		Source:    w.Bytes(),
		Packages:  sortedUnique(ns.Packages),
		Function:  fn,
		Label:     ns.Name,
		Prototype: fmt.Sprintf("void print_%s_types();", ns.Name),
		Rows:      rows,
	}, nil
}

// Ctypes renders the c-types of ns that have no registered GType. Only
// type-info output lists them; other formats get an empty function.
func (r *Renderer) Ctypes(ns *gir.Namespace, fileName string) (Unit, error) {
	w := r.newWriter(codewriter.CommentC)
	w.WriteNewline()
	w.WriteLine(commonIncludes)
	w.WriteNewline()

	fn := fmt.Sprintf("print_%s_ctypes_types", ns.Name)
	w.WriteLine("void " + fn + "()")

	rows := 0
	err := w.Scope("function", func() error {
		if r.Format == FormatTypeInfo {
			rows = r.writeNodes(w, classify.New(r.Registry, true), ns.Name, ns.UnregisteredCTypes().Entries())
		}
		return nil
	})
	if err != nil {
		return Unit{}, err
	}

	return Unit{
		FileName: fileName,
		Source:   w.Bytes(),
		Function: fn,
		Label:    ns.Name + " ctypes",
		// the header declares the namespace function, not the ctypes one
		Prototype: fmt.Sprintf("void print_%s_types();", ns.Name),
		Rows:      rows,
	}, nil
}

// Registered renders the registry itself as the "registered" namespace.
func (r *Renderer) Registered() (Unit, error) {
	w := r.newWriter(codewriter.CommentC)
	w.WriteNewline()
	w.WriteLine(commonIncludes)
	w.WriteNewline()

	fn := fmt.Sprintf("print_%s_types", RegisteredNamespace)
	w.WriteLine("void " + fn + "()")

	rows := 0
	err := w.Scope("function", func() error {
		if r.Format == FormatTypeInfo {
			rows = r.writeNodes(w, classify.New(r.Registry, false), RegisteredNamespace, RegistryNodes(r.Registry))
		}
		return nil
	})
	if err != nil {
		return Unit{}, err
	}

	return Unit{
		FileName:  RegisteredNamespace + ".c",
		Source:    w.Bytes(),
		Function:  fn,
		Label:     RegisteredNamespace,
		Prototype: fmt.Sprintf("void print_%s_types();", RegisteredNamespace),
		Rows:      rows,
	}, nil
}

// RegistryNodes presents the registry entries as type nodes, keyed by
// type name (later duplicates replace earlier ones in place).
func RegistryNodes(reg *gtype.Registry) []gir.Entry {
	m := gir.NewNodeMap()
	for _, e := range reg.Entries() {
		m.Set(e.TypeName, &gir.Node{
			Kind:              gir.KindType,
			Name:              e.TypeName,
			GTypeName:         e.TypeName,
			GetType:           gir.ParseGetType(e.GetType),
			CType:             e.CType,
			TargetFundamental: e.TypeName,
		})
	}
	return m.Entries()
}

func (r *Renderer) writeNodes(w *codewriter.Writer, c *classify.Classifier, namespace string, entries []gir.Entry) int {
	for _, e := range entries {
		res := c.Classify(e.Node)
		if res.CTypeMissing {
			w.WriteLine(res.WarningComment())
		}
		WriteRow(w, RenderRow(r.Format, namespace, res, r.Exclude.IsGTypeExcluded(res.TypeName)))
	}
	return len(entries)
}

func sortedUnique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
