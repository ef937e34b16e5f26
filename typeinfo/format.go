package typeinfo

import (
	"strings"

	"github.com/teranos/gircheck/errors"
)

// Format is the row shape written for each node.
type Format int

const (
	// FormatTypeInfo prints one CSV row per type.
	FormatTypeInfo Format = iota
	// FormatPropertyInfo lists the properties of each type.
	FormatPropertyInfo
	// FormatSignalInfo lists the signals of each type.
	FormatSignalInfo
)

func (f Format) String() string {
	switch f {
	case FormatPropertyInfo:
		return "propertyinfo"
	case FormatSignalInfo:
		return "signalinfo"
	default:
		return "typeinfo"
	}
}

// SelectFormat picks the format from the three mode switches. Property
// info wins over signal info, which wins over type info. ok is false when
// no switch is set.
func SelectFormat(typeInfo, propertyInfo, signalInfo bool) (f Format, ok bool) {
	switch {
	case propertyInfo:
		return FormatPropertyInfo, true
	case signalInfo:
		return FormatSignalInfo, true
	case typeInfo:
		return FormatTypeInfo, true
	default:
		return FormatTypeInfo, false
	}
}

// ParseFormat maps a format name (as printed by String) back to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "typeinfo", "type", "":
		return FormatTypeInfo, nil
	case "propertyinfo", "property":
		return FormatPropertyInfo, nil
	case "signalinfo", "signal":
		return FormatSignalInfo, nil
	default:
		return FormatTypeInfo, errors.Wrapf(errors.ErrInvalidArgument, "unknown format %q (supported: typeinfo, propertyinfo, signalinfo)", s)
	}
}
