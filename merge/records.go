// Package merge joins a property-info stream with a type-info stream,
// resolving the identity expression of every property's value type.
//
// Both inputs are produced by running the generated girtypes program.
// Rows are comma separated without quoting, so values never contain
// commas.
package merge

import (
	"bufio"
	"io"
	"strings"

	"github.com/teranos/gircheck/errors"
)

// Field counts of the three row shapes.
const (
	TypeInfoFields       = 6
	PropertyInfoFields   = 8
	MergedPropertyFields = 9
)

// TypeInfoRecord is one row printed by a type-info build.
type TypeInfoRecord struct {
	Namespace   string
	NodeType    string
	TypeName    string
	CType       string
	GetType     string
	Fundamental string
}

// PropertyInfoRecord is one row printed by a property-info build.
type PropertyInfoRecord struct {
	Namespace string
	NodeType  string
	TypeName  string
	// ValueType is the type name of the property value
	ValueType string
	// Pointer is "*" for pointer-valued properties, empty otherwise
	Pointer      string
	Flags        string
	PropertyName string
	Fundamental  string
}

// MergedPropertyRecord is a property row with its resolved identity. It
// is a distinct type so a merged stream cannot be fed back as input.
type MergedPropertyRecord struct {
	PropertyInfoRecord
	GetType string
}

// Fields returns the row in column order.
func (r PropertyInfoRecord) Fields() []string {
	return []string{r.Namespace, r.NodeType, r.TypeName, r.ValueType, r.Pointer, r.Flags, r.PropertyName, r.Fundamental}
}

// String renders the row as written to a stream.
func (r PropertyInfoRecord) String() string {
	return strings.Join(r.Fields(), ",")
}

// String renders the merged row, identity last.
func (r MergedPropertyRecord) String() string {
	return r.PropertyInfoRecord.String() + "," + r.GetType
}

// ReadTypeInfo parses a type-info stream. source names the stream in
// errors.
func ReadTypeInfo(r io.Reader, source string) ([]TypeInfoRecord, error) {
	var out []TypeInfoRecord
	err := readRows(r, source, TypeInfoFields, func(f []string) {
		out = append(out, TypeInfoRecord{
			Namespace:   f[0],
			NodeType:    f[1],
			TypeName:    f[2],
			CType:       f[3],
			GetType:     f[4],
			Fundamental: f[5],
		})
	})
	return out, err
}

// ReadPropertyInfo parses a property-info stream. A merged stream has one
// field too many and is rejected.
func ReadPropertyInfo(r io.Reader, source string) ([]PropertyInfoRecord, error) {
	var out []PropertyInfoRecord
	err := readRows(r, source, PropertyInfoFields, func(f []string) {
		out = append(out, PropertyInfoRecord{
			Namespace:    f[0],
			NodeType:     f[1],
			TypeName:     f[2],
			ValueType:    f[3],
			Pointer:      f[4],
			Flags:        f[5],
			PropertyName: f[6],
			Fundamental:  f[7],
		})
	})
	return out, err
}

// readRows splits every non-blank line into exactly want fields.
func readRows(r io.Reader, source string, want int, fn func([]string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != want {
			return errors.NewMalformedRecordError(source, line, want, len(fields))
		}
		fn(fields)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read %s", source)
	}
	return nil
}
