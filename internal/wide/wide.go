// Package wide implements the UTF-16 code unit layer of the registry value
// codec: conversion between byte buffers and code units, strict UTF-16
// decoding, and an alignment-guaranteed buffer for host API calls.
//
// The registry wire format stores all text as UTF-16LE code units. This
// package is the only place that deals in code units; everything above it
// works with Go strings, everything below it with raw bytes.
package wide

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// Surrogate ranges per the Unicode standard. A high surrogate must be
// followed by a low surrogate; anything else is malformed UTF-16.
const (
	surrHigh    = 0xD800
	surrLow     = 0xDC00
	surrEnd     = 0xE000
	asciiCutoff = 0x80
)

// ErrUnpairedSurrogate indicates a high or low surrogate code unit without
// its partner.
var ErrUnpairedSurrogate = errors.New("wide: unpaired utf-16 surrogate")

// Units reinterprets b as little-endian UTF-16 code units. Bytes beyond the
// last full pair are ignored; callers reject odd lengths before getting here.
//
// The returned slice is freshly allocated: the alignment of an arbitrary
// byte slice is not under our control, so this reinterpretation copies
// rather than casting. Buffers produced by this package's Buffer type
// convert without the copy.
func Units(b []byte) []uint16 {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return units
}

// Bytes serializes units as bytes, low byte first.
func Bytes(units []uint16) []byte {
	b := make([]byte, len(units)*2)
	for i, u := range units {
		b[2*i] = byte(u)
		b[2*i+1] = byte(u >> 8)
	}
	return b
}

// AppendString appends the UTF-16 code units of s to dst, followed by a
// single zero terminator unit, and returns the extended slice.
//
// The caller validates s beforehand; runes outside the valid Unicode range
// would otherwise be silently replaced by utf16.AppendRune.
func AppendString(dst []uint16, s string) []uint16 {
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}
	return append(dst, 0)
}

// DecodeAll decodes units as UTF-16 and returns the resulting string.
// Unlike utf16.Decode, which substitutes U+FFFD, a malformed sequence is
// reported as an ErrUnpairedSurrogate so callers can surface the corruption
// instead of masking it.
func DecodeAll(units []uint16) (string, error) {
	// Fast path: registry text is overwhelmingly ASCII.
	ascii := true
	for _, u := range units {
		if u >= asciiCutoff {
			ascii = false
			break
		}
	}
	if ascii {
		var b strings.Builder
		b.Grow(len(units))
		for _, u := range units {
			b.WriteByte(byte(u))
		}
		return b.String(), nil
	}

	var b strings.Builder
	b.Grow(len(units)) // UTF-8 output is rarely longer than the UTF-16 input
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < surrHigh || u >= surrEnd:
			b.WriteRune(rune(u))
		case u < surrLow && i+1 < len(units) && units[i+1] >= surrLow && units[i+1] < surrEnd:
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		default:
			return "", fmt.Errorf("code unit %#04x at index %d: %w", u, i, ErrUnpairedSurrogate)
		}
	}
	return b.String(), nil
}
