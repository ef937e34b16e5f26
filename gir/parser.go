package gir

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/teranos/gircheck/errors"
)

// XML namespaces used by GIR documents.
const (
	CoreNS = "http://www.gtk.org/introspection/core/1.0"
	CNS    = "http://www.gtk.org/introspection/c/1.0"
	GLibNS = "http://www.gtk.org/introspection/glib/1.0"
)

type xmlType struct {
	Name  string `xml:"name,attr"`
	CType string `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
}

type xmlEntity struct {
	Name     string      `xml:"name,attr"`
	CType    string      `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	TypeName string      `xml:"http://www.gtk.org/introspection/glib/1.0 type-name,attr"`
	GetType  string      `xml:"http://www.gtk.org/introspection/glib/1.0 get-type,attr"`
	Type     *xmlType    `xml:"type"`
	Members  []xmlEntity `xml:"member"`
}

// Parse reads the .gir file at path.
func Parse(path string) (*Namespace, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNoSuchFileError(path, "GIR")
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	ns, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return ns, nil
}

// Decode reads a GIR document. Entities are kept in document order.
func Decode(r io.Reader) (*Namespace, error) {
	d := xml.NewDecoder(r)

	var (
		ns        *Namespace
		cIncludes []string
		packages  []string
	)

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed GIR document")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case start.Name.Local == "include" && start.Name.Space == CNS:
			cIncludes = append(cIncludes, attr(start, "", "name"))
		case start.Name.Local == "package":
			packages = append(packages, attr(start, "", "name"))
		case start.Name.Local == "namespace" && ns == nil:
			ns = NewNamespace(attr(start, "", "name"))
			ns.Version = attr(start, "", "version")
			ns.SharedLibrary = attr(start, "", "shared-library")
			if err := decodeNamespaceBody(d, ns); err != nil {
				return nil, errors.Wrapf(err, "namespace %s", ns.Name)
			}
		}
	}

	if ns == nil {
		return nil, errors.New("no <namespace> element")
	}
	ns.CIncludes = cIncludes
	ns.Packages = packages
	return ns, nil
}

// decodeNamespaceBody consumes tokens up to the closing </namespace>.
func decodeNamespaceBody(d *xml.Decoder, ns *Namespace) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return errors.Wrap(err, "unterminated namespace")
		}

		switch t := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			kind, known := elementKind(t.Name)
			if !known {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			var e xmlEntity
			if err := d.DecodeElement(&e, &t); err != nil {
				return errors.Wrapf(err, "<%s>", t.Name.Local)
			}
			if kind == KindBoxed && e.Name == "" {
				e.Name = attr(t, GLibNS, "name")
			}
			addEntity(ns, kind, e)
		}
	}
}

func elementKind(name xml.Name) (Kind, bool) {
	if name.Space == GLibNS {
		if name.Local == "boxed" {
			return KindBoxed, true
		}
		return KindUnknown, false
	}
	switch name.Local {
	case "function":
		return KindFunction, true
	case "function-macro":
		return KindFunctionMacro, true
	case "enumeration":
		return KindEnum, true
	case "bitfield":
		return KindBitfield, true
	case "class":
		return KindClass, true
	case "interface":
		return KindInterface, true
	case "callback":
		return KindCallback, true
	case "record":
		return KindRecord, true
	case "union":
		return KindUnion, true
	case "alias":
		return KindAlias, true
	case "constant":
		return KindConstant, true
	default:
		return KindUnknown, false
	}
}

func addEntity(ns *Namespace, kind Kind, e xmlEntity) {
	n := &Node{
		Kind:      kind,
		Name:      e.Name,
		GTypeName: e.TypeName,
		GetType:   ParseGetType(e.GetType),
		CType:     e.CType,
	}
	if e.Type != nil {
		n.CompleteCType = e.Type.CType
	}
	n.TargetFundamental = n.CType
	if n.TargetFundamental == "" {
		n.TargetFundamental = n.Name
	}
	ns.Add(n)

	if kind == KindEnum || kind == KindBitfield {
		for _, m := range e.Members {
			ns.Add(&Node{Kind: KindMember, Name: m.Name, TargetFundamental: m.Name})
		}
	}
}

func attr(start xml.StartElement, space, local string) string {
	for _, a := range start.Attr {
		if a.Name.Local != local {
			continue
		}
		if space == "" && a.Name.Space != "" && a.Name.Space != CoreNS {
			continue
		}
		if space != "" && a.Name.Space != space {
			continue
		}
		return a.Value
	}
	return ""
}
