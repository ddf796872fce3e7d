package value

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValueType identifies the wire representation of a value payload. The
// numeric values are the host registry's type tags and must not be
// reordered.
type ValueType uint32

const (
	TypeNone ValueType = iota
	TypeString
	TypeExpandString
	TypeBinary
	TypeU32
	TypeU32BE
	TypeLink
	TypeMultiString
	TypeResourceList
	TypeFullResourceDescriptor
	TypeResourceRequirementsList
	TypeU64
)

// maxType is the highest tag the codec understands.
const maxType = uint32(TypeU64)

// String returns the host registry's name for the type.
func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "REG_NONE"
	case TypeString:
		return "REG_SZ"
	case TypeExpandString:
		return "REG_EXPAND_SZ"
	case TypeBinary:
		return "REG_BINARY"
	case TypeU32:
		return "REG_DWORD"
	case TypeU32BE:
		return "REG_DWORD_BIG_ENDIAN"
	case TypeLink:
		return "REG_LINK"
	case TypeMultiString:
		return "REG_MULTI_SZ"
	case TypeResourceList:
		return "REG_RESOURCE_LIST"
	case TypeFullResourceDescriptor:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case TypeResourceRequirementsList:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case TypeU64:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// Data is a decoded registry value payload: one variant per ValueType.
//
// A Data is immutable once constructed. The variant is fixed by the
// constructor used, and text is validated there (no embedded NUL, valid
// UTF-8), so a Data's Encode is always well defined. To change a value,
// build a new Data.
//
// The zero Data is the REG_NONE value.
type Data struct {
	vt   ValueType
	num  uint64
	str  string
	list []string
	raw  []byte
}

// None returns the REG_NONE value. It carries no payload.
func None() Data { return Data{vt: TypeNone} }

// Link returns the REG_LINK marker. The payload is not interpreted.
func Link() Data { return Data{vt: TypeLink} }

// ResourceList returns the REG_RESOURCE_LIST marker.
func ResourceList() Data { return Data{vt: TypeResourceList} }

// FullResourceDescriptor returns the REG_FULL_RESOURCE_DESCRIPTOR marker.
func FullResourceDescriptor() Data { return Data{vt: TypeFullResourceDescriptor} }

// ResourceRequirementsList returns the REG_RESOURCE_REQUIREMENTS_LIST marker.
func ResourceRequirementsList() Data { return Data{vt: TypeResourceRequirementsList} }

// String constructs a REG_SZ value. The text must be valid UTF-8 and free
// of NUL characters; anything else cannot survive the NUL-terminated
// UTF-16 wire form and is rejected here rather than at encode time.
func String(s string) (Data, error) {
	if err := checkText(s); err != nil {
		return Data{}, err
	}
	return Data{vt: TypeString, str: s}, nil
}

// ExpandString constructs a REG_EXPAND_SZ value. The encoding is identical
// to REG_SZ; the tag tells consumers to expand environment references.
func ExpandString(s string) (Data, error) {
	if err := checkText(s); err != nil {
		return Data{}, err
	}
	return Data{vt: TypeExpandString, str: s}, nil
}

// MultiString constructs a REG_MULTI_SZ value from the given entries,
// order preserved. Each entry is validated like String.
func MultiString(ss []string) (Data, error) {
	for i, s := range ss {
		if err := checkText(s); err != nil {
			return Data{}, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return Data{vt: TypeMultiString, list: slices.Clone(ss)}, nil
}

// Binary constructs a REG_BINARY value. The Data takes ownership of b;
// the caller must not modify it afterwards.
func Binary(b []byte) Data { return Data{vt: TypeBinary, raw: b} }

// U32 constructs a REG_DWORD value (little-endian on the wire).
func U32(v uint32) Data { return Data{vt: TypeU32, num: uint64(v)} }

// U32BE constructs a REG_DWORD_BIG_ENDIAN value.
func U32BE(v uint32) Data { return Data{vt: TypeU32BE, num: uint64(v)} }

// U64 constructs a REG_QWORD value (little-endian on the wire).
func U64(v uint64) Data { return Data{vt: TypeU64, num: v} }

func checkText(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrEmbeddedNul
	}
	if !utf8.ValidString(s) {
		return ErrInvalidText
	}
	return nil
}

// Type returns the value's wire type tag.
func (d Data) Type() ValueType { return d.vt }

// Text returns the payload of a REG_SZ or REG_EXPAND_SZ value.
// ok is false for every other type.
func (d Data) Text() (string, bool) {
	if d.vt == TypeString || d.vt == TypeExpandString {
		return d.str, true
	}
	return "", false
}

// Strings returns the entries of a REG_MULTI_SZ value. The slice is shared;
// callers must not modify it.
func (d Data) Strings() ([]string, bool) {
	if d.vt == TypeMultiString {
		return d.list, true
	}
	return nil, false
}

// Bytes returns the payload of a REG_BINARY value. The slice is shared;
// callers must not modify it.
func (d Data) Bytes() ([]byte, bool) {
	if d.vt == TypeBinary {
		return d.raw, true
	}
	return nil, false
}

// Uint32 returns the payload of a REG_DWORD or REG_DWORD_BIG_ENDIAN value.
func (d Data) Uint32() (uint32, bool) {
	if d.vt == TypeU32 || d.vt == TypeU32BE {
		return uint32(d.num), true
	}
	return 0, false
}

// Uint64 returns the payload of a REG_QWORD value.
func (d Data) Uint64() (uint64, bool) {
	if d.vt == TypeU64 {
		return d.num, true
	}
	return 0, false
}

// Equal reports whether d and o have the same type and payload.
func (d Data) Equal(o Data) bool {
	if d.vt != o.vt {
		return false
	}
	switch d.vt {
	case TypeString, TypeExpandString:
		return d.str == o.str
	case TypeMultiString:
		return slices.Equal(d.list, o.list)
	case TypeBinary:
		return slices.Equal(d.raw, o.raw)
	case TypeU32, TypeU32BE, TypeU64:
		return d.num == o.num
	default:
		return true
	}
}

// String renders the payload for display. Markers without payload render
// as their type name, binary data as hex, multi-strings one entry per line.
func (d Data) String() string {
	switch d.vt {
	case TypeString, TypeExpandString:
		return d.str
	case TypeMultiString:
		return strings.Join(d.list, "\n")
	case TypeBinary:
		return hex.EncodeToString(d.raw)
	case TypeU32, TypeU32BE, TypeU64:
		return strconv.FormatUint(d.num, 10)
	default:
		return d.vt.String()
	}
}
