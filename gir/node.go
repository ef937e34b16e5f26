// Package gir reads GObject-Introspection repository (.gir) files into the
// namespace model consumed by the type-information generator.
//
// Only the attributes the generator needs are kept. Structural validation
// of the document is out of scope.
package gir

// Kind is the closed set of entity kinds a namespace node can have.
type Kind int

const (
	KindUnknown Kind = iota
	KindFunction
	KindFunctionMacro
	KindEnum
	KindBitfield
	KindClass
	KindInterface
	KindCallback
	KindRecord
	KindUnion
	KindBoxed
	KindMember
	KindAlias
	KindConstant
	KindType
	KindRegistered
)

// String returns the label written into generated rows.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindFunctionMacro:
		return "functionmacro"
	case KindEnum:
		return "enum"
	case KindBitfield:
		return "bitfield"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindCallback:
		return "callback"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	case KindBoxed:
		return "boxed"
	case KindMember:
		return "member"
	case KindAlias:
		return "alias"
	case KindConstant:
		return "constant"
	case KindType:
		return "type"
	case KindRegistered:
		return "registered"
	default:
		return "unknown"
	}
}

type getTypeMode int

const (
	getTypeAbsent getTypeMode = iota
	getTypeIntern
	getTypeLiteral
)

// InternGetType is the attribute value GIR uses for types whose identity
// is provided by the type system itself.
const InternGetType = "intern"

// GetType is a node's declared identity expression: absent, a literal
// get-type function (or constant) name, or "resolve through the registry".
type GetType struct {
	mode    getTypeMode
	literal string
}

// NoGetType is the zero value: nothing declared.
func NoGetType() GetType { return GetType{} }

// Intern declares that the identity comes from the registry.
func Intern() GetType { return GetType{mode: getTypeIntern} }

// Literal declares an explicit identity expression.
func Literal(expr string) GetType { return GetType{mode: getTypeLiteral, literal: expr} }

// ParseGetType maps a raw glib:get-type attribute to a GetType.
func ParseGetType(raw string) GetType {
	switch raw {
	case "":
		return NoGetType()
	case InternGetType:
		return Intern()
	default:
		return Literal(raw)
	}
}

// IsSet reports whether an identity was declared at all.
func (g GetType) IsSet() bool { return g.mode != getTypeAbsent }

// IsIntern reports whether the identity must be resolved via the registry.
func (g GetType) IsIntern() bool { return g.mode == getTypeIntern }

// Literal returns the literal expression, if that is what was declared.
func (g GetType) Literal() (string, bool) {
	return g.literal, g.mode == getTypeLiteral
}

// Node is one entity of a namespace.
type Node struct {
	Kind Kind
	// Name is the GIR name, e.g. "Widget"
	Name string
	// GTypeName is glib:type-name; empty when the type is not registered
	GTypeName string
	GetType   GetType
	// CType is c:type on the element itself
	CType string
	// CompleteCType is the c:type of the wrapped <type>, for aliases and constants
	CompleteCType string
	// TargetFundamental names the type when no GTypeName is declared
	TargetFundamental string
}
