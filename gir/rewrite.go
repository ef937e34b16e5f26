package gir

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/teranos/gircheck/errors"
)

// registrationAttrs are dropped from an element whose registered type is
// excluded, turning it into a plain (unregistered) C type.
var registrationAttrs = map[string]bool{
	"type-name":   true,
	"get-type":    true,
	"type-struct": true,
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "\n", "&#10;", "\t", "&#9;")
)

// Passthrough re-encodes a GIR document token by token without changing it.
// Empty elements are written in self-closing form.
func Passthrough(w io.Writer, r io.Reader) error {
	return Rewrite(w, r, nil)
}

// Rewrite re-encodes a GIR document. For every element whose
// glib:type-name satisfies excluded, the glib registration attributes are
// removed. A nil excluded behaves like Passthrough.
func Rewrite(w io.Writer, r io.Reader, excluded func(typeName string) bool) error {
	d := xml.NewDecoder(r)
	bw := bufio.NewWriter(w)

	var pending *xml.StartElement
	openPending := func(selfClose bool) {
		writeStart(bw, *pending, selfClose)
		pending = nil
	}

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "malformed GIR document")
		}

		if pending != nil {
			_, isEnd := tok.(xml.EndElement)
			openPending(isEnd)
			if isEnd {
				continue
			}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			start := t.Copy()
			if excluded != nil {
				start.Attr = stripRegistration(start.Attr, excluded)
			}
			pending = &start
		case xml.EndElement:
			bw.WriteString("</" + qualified(t.Name) + ">")
		case xml.CharData:
			textEscaper.WriteString(bw, string(t))
		case xml.Comment:
			bw.WriteString("<!--" + string(t) + "-->")
		case xml.ProcInst:
			bw.WriteString("<?" + t.Target)
			if len(t.Inst) > 0 {
				bw.WriteString(" " + string(t.Inst))
			}
			bw.WriteString("?>")
		case xml.Directive:
			bw.WriteString("<!" + string(t) + ">")
		}
	}
	if pending != nil {
		openPending(false)
	}
	return bw.Flush()
}

// RewriteFile is Rewrite over the file at path.
func RewriteFile(w io.Writer, path string, excluded func(typeName string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNoSuchFileError(path, "GIR")
		}
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	if err := Rewrite(w, f, excluded); err != nil {
		return errors.Wrapf(err, "failed to rewrite %s", path)
	}
	return nil
}

func stripRegistration(attrs []xml.Attr, excluded func(string) bool) []xml.Attr {
	typeName := ""
	for _, a := range attrs {
		if a.Name.Space == "glib" && a.Name.Local == "type-name" {
			typeName = a.Value
		}
	}
	if typeName == "" || !excluded(typeName) {
		return attrs
	}

	kept := attrs[:0]
	for _, a := range attrs {
		if a.Name.Space == "glib" && registrationAttrs[a.Name.Local] {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

func writeStart(bw *bufio.Writer, start xml.StartElement, selfClose bool) {
	bw.WriteString("<" + qualified(start.Name))
	for _, a := range start.Attr {
		bw.WriteString(" " + qualified(a.Name) + `="`)
		attrEscaper.WriteString(bw, a.Value)
		bw.WriteString(`"`)
	}
	if selfClose {
		bw.WriteString("/>")
	} else {
		bw.WriteString(">")
	}
}

// qualified renders a raw (unresolved) name as prefix:local.
func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
