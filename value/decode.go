package value

import (
	"fmt"
	"slices"

	"github.com/joshuapare/regkit/internal/buf"
	"github.com/joshuapare/regkit/internal/wide"
)

// Decode interprets a raw (tag, payload) pair as read from the store and
// returns the typed value.
//
// Decode takes ownership of data: a REG_BINARY result aliases it without
// copying. Callers that need to keep the raw buffer must pass a copy.
//
// Malformed input is returned as a typed error (ErrUnhandledType,
// ErrInvalidBufferSize, ErrMissingNul, ErrMissingMultiNul, ErrInvalidUTF16,
// ErrTruncated); Decode never panics and never silently substitutes a
// default value.
func Decode(tag uint32, data []byte) (Data, error) {
	if tag > maxType {
		return Data{}, fmt.Errorf("tag %#x: %w", tag, ErrUnhandledType)
	}

	vt := ValueType(tag)
	switch vt {
	case TypeNone, TypeLink, TypeResourceList, TypeFullResourceDescriptor,
		TypeResourceRequirementsList:
		// Payload is not interpreted for these types.
		return Data{vt: vt}, nil

	case TypeString, TypeExpandString:
		s, err := decodeString(data)
		if err != nil {
			return Data{}, fmt.Errorf("%s: %w", vt, err)
		}
		return Data{vt: vt, str: s}, nil

	case TypeMultiString:
		list, err := decodeMultiString(data)
		if err != nil {
			return Data{}, fmt.Errorf("%s: %w", vt, err)
		}
		return Data{vt: vt, list: list}, nil

	case TypeBinary:
		return Data{vt: vt, raw: data}, nil

	case TypeU32:
		if !buf.Has(data, 0, 4) {
			return Data{}, fmt.Errorf("%s: %w (have %d, need 4)", vt, ErrTruncated, len(data))
		}
		return U32(buf.U32LE(data)), nil

	case TypeU32BE:
		if !buf.Has(data, 0, 4) {
			return Data{}, fmt.Errorf("%s: %w (have %d, need 4)", vt, ErrTruncated, len(data))
		}
		return U32BE(buf.U32BE(data)), nil

	default: // TypeU64
		if !buf.Has(data, 0, 8) {
			return Data{}, fmt.Errorf("%s: %w (have %d, need 8)", vt, ErrTruncated, len(data))
		}
		return U64(buf.U64LE(data)), nil
	}
}

// decodeString parses a NUL-terminated UTF-16LE payload. Code units after
// the first NUL are ignored, matching the host's string semantics.
func decodeString(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("%d bytes: %w", len(data), ErrInvalidBufferSize)
	}
	units := wide.Units(data)
	end := slices.Index(units, 0)
	if end < 0 {
		return "", ErrMissingNul
	}
	s, err := wide.DecodeAll(units[:end])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUTF16, err)
	}
	return s, nil
}

// decodeMultiString parses a NUL-delimited UTF-16LE string list. The
// payload must end in two zero code units; both are sentinels and are
// excluded before splitting, so the terminator never produces a phantom
// empty entry.
func decodeMultiString(data []byte) ([]string, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(data), ErrInvalidBufferSize)
	}
	units := wide.Units(data)
	if len(units) < 2 || units[len(units)-1] != 0 || units[len(units)-2] != 0 {
		return nil, ErrMissingMultiNul
	}
	content := units[:len(units)-2]

	var list []string
	start := 0
	for i, u := range content {
		if u != 0 {
			continue
		}
		s, err := wide.DecodeAll(content[start:i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w: %w", len(list), ErrInvalidUTF16, err)
		}
		list = append(list, s)
		start = i + 1
	}
	if len(content) > 0 {
		s, err := wide.DecodeAll(content[start:])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w: %w", len(list), ErrInvalidUTF16, err)
		}
		list = append(list, s)
	}
	return list, nil
}
