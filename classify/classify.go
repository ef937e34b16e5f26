// Package classify resolves a namespace node into the identity quadruple
// written into generated rows: kind, type name, identity expression and
// C storage type.
package classify

import (
	"fmt"

	"github.com/teranos/gircheck/gir"
	"github.com/teranos/gircheck/gtype"
)

// NotFoundSuffix is appended to a type name whose "intern" identity has no
// registry entry. The marker ends up in the generated source verbatim.
const NotFoundSuffix = " not found"

// FundamentalFallback returns the coarse identity used for kind when the
// node declares no identity and the classifier runs in unregistered mode.
func FundamentalFallback(kind gir.Kind) gtype.Fundamental {
	switch kind {
	case gir.KindEnum:
		return gtype.FundamentalEnum
	case gir.KindBitfield:
		return gtype.FundamentalFlags
	case gir.KindClass:
		return gtype.FundamentalObject
	case gir.KindInterface:
		return gtype.FundamentalInterface
	case gir.KindCallback:
		return gtype.FundamentalPointer
	case gir.KindRecord, gir.KindUnion, gir.KindBoxed:
		return gtype.FundamentalBoxed
	case gir.KindMember:
		return gtype.FundamentalInt
	case gir.KindConstant:
		// a C define can be any number of types
		return gtype.FundamentalInvalid
	case gir.KindFunction, gir.KindFunctionMacro, gir.KindAlias,
		gir.KindType, gir.KindRegistered, gir.KindUnknown:
		return gtype.FundamentalInvalid
	default:
		return gtype.FundamentalInvalid
	}
}

// Resolution is the classified identity of one node.
type Resolution struct {
	Kind gir.Kind
	// TypeName is the GType name written in the row; empty in unregistered
	// mode for nodes that declare none
	TypeName    string
	HasTypeName bool
	// GetType is the identity expression, ready to be pasted into C
	GetType string
	// CType is the storage type; falls back to TypeName when missing
	CType string
	// CTypeMissing is set when neither c:type nor a complete c:type was
	// declared and TypeName was substituted
	CTypeMissing bool
}

// WarningComment is the diagnostic written above a row whose C type had
// to be substituted.
func (r Resolution) WarningComment() string {
	return fmt.Sprintf("/* WARNING: ctype is missing for '%s' in GIR file */", r.TypeName)
}

// Classifier resolves nodes against a registry.
type Classifier struct {
	Registry *gtype.Registry
	// Unregistered classifies c-types without a registered GType: no type
	// name is synthesised and the fundamental fallback is used as identity
	Unregistered bool
}

// New returns a classifier over reg.
func New(reg *gtype.Registry, unregistered bool) *Classifier {
	return &Classifier{Registry: reg, Unregistered: unregistered}
}

// Classify resolves n. Each step may use the results of the previous ones.
func (c *Classifier) Classify(n *gir.Node) Resolution {
	res := Resolution{Kind: n.Kind}

	switch {
	case n.GTypeName != "":
		res.TypeName, res.HasTypeName = n.GTypeName, true
	case !c.Unregistered:
		res.TypeName = n.TargetFundamental
		res.HasTypeName = n.TargetFundamental != ""
	default:
		res.HasTypeName = true
	}

	res.GetType = c.identity(n, res)

	switch {
	case n.CType != "":
		res.CType = n.CType
	case n.CompleteCType != "":
		res.CType = n.CompleteCType
	case res.HasTypeName:
		res.CType = res.TypeName
		res.CTypeMissing = true
	}

	return res
}

func (c *Classifier) identity(n *gir.Node, res Resolution) string {
	if n.GetType.IsIntern() {
		if t, ok := c.Registry.ByTypeName(res.TypeName); ok {
			return t.GetType
		}
		return res.TypeName + NotFoundSuffix
	}
	if lit, ok := n.GetType.Literal(); ok {
		if gtype.IsConstant(lit) {
			return lit
		}
		return lit + "()"
	}
	if c.Unregistered {
		return FundamentalFallback(n.Kind).String()
	}
	return fmt.Sprintf(`g_type_from_name("%s")`, n.TargetFundamental)
}
