package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/value"
)

// typeAliases maps accepted spellings to value types. Both the REG_*
// names and the short forms work, case-insensitively.
var typeAliases = map[string]value.ValueType{
	"none":                           value.TypeNone,
	"reg_none":                       value.TypeNone,
	"sz":                             value.TypeString,
	"string":                         value.TypeString,
	"reg_sz":                         value.TypeString,
	"expand_sz":                      value.TypeExpandString,
	"reg_expand_sz":                  value.TypeExpandString,
	"binary":                         value.TypeBinary,
	"reg_binary":                     value.TypeBinary,
	"dword":                          value.TypeU32,
	"reg_dword":                      value.TypeU32,
	"dword_be":                       value.TypeU32BE,
	"reg_dword_big_endian":           value.TypeU32BE,
	"link":                           value.TypeLink,
	"reg_link":                       value.TypeLink,
	"multi_sz":                       value.TypeMultiString,
	"reg_multi_sz":                   value.TypeMultiString,
	"resource_list":                  value.TypeResourceList,
	"reg_resource_list":              value.TypeResourceList,
	"full_resource_descriptor":       value.TypeFullResourceDescriptor,
	"reg_full_resource_descriptor":   value.TypeFullResourceDescriptor,
	"resource_requirements_list":     value.TypeResourceRequirementsList,
	"reg_resource_requirements_list": value.TypeResourceRequirementsList,
	"qword":                          value.TypeU64,
	"reg_qword":                      value.TypeU64,
}

// parseType resolves a type given by name or by numeric tag.
func parseType(s string) (value.ValueType, error) {
	if vt, ok := typeAliases[strings.ToLower(s)]; ok {
		return vt, nil
	}
	if tag, err := strconv.ParseUint(s, 0, 32); err == nil {
		return value.ValueType(tag), nil
	}
	return 0, fmt.Errorf("unknown value type %q", s)
}

// buildData constructs a Data of the given type from command arguments:
// text for the string types, one entry per argument for multi_sz, a
// number for the integer types and hex bytes for binary.
func buildData(vt value.ValueType, args []string) (value.Data, error) {
	switch vt {
	case value.TypeNone:
		return value.None(), nil
	case value.TypeLink:
		return value.Link(), nil
	case value.TypeResourceList:
		return value.ResourceList(), nil
	case value.TypeFullResourceDescriptor:
		return value.FullResourceDescriptor(), nil
	case value.TypeResourceRequirementsList:
		return value.ResourceRequirementsList(), nil

	case value.TypeString, value.TypeExpandString:
		if len(args) != 1 {
			return value.Data{}, fmt.Errorf("%s takes exactly one text argument", vt)
		}
		if vt == value.TypeExpandString {
			return value.ExpandString(args[0])
		}
		return value.String(args[0])

	case value.TypeMultiString:
		return value.MultiString(args)

	case value.TypeBinary:
		if len(args) != 1 {
			return value.Data{}, fmt.Errorf("%s takes exactly one hex argument", vt)
		}
		raw, err := decodeHex(args[0])
		if err != nil {
			return value.Data{}, err
		}
		return value.Binary(raw), nil

	case value.TypeU32, value.TypeU32BE:
		if len(args) != 1 {
			return value.Data{}, fmt.Errorf("%s takes exactly one numeric argument", vt)
		}
		n, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return value.Data{}, fmt.Errorf("invalid %s value %q: %w", vt, args[0], err)
		}
		if vt == value.TypeU32BE {
			return value.U32BE(uint32(n)), nil
		}
		return value.U32(uint32(n)), nil

	case value.TypeU64:
		if len(args) != 1 {
			return value.Data{}, fmt.Errorf("%s takes exactly one numeric argument", vt)
		}
		n, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return value.Data{}, fmt.Errorf("invalid %s value %q: %w", vt, args[0], err)
		}
		return value.U64(n), nil

	default:
		return value.Data{}, fmt.Errorf("cannot build a %s value", vt)
	}
}
