// Package value implements the registry value codec: conversion between
// typed value payloads and the raw (type tag, byte buffer) pairs that the
// underlying key/value store reads and writes.
//
// # Overview
//
// Every value stored under a registry key carries a numeric type tag
// (0..11) and an opaque byte buffer. The tag is the single source of truth
// for how the buffer is laid out:
//
//   - REG_SZ / REG_EXPAND_SZ: NUL-terminated UTF-16LE text
//   - REG_MULTI_SZ: NUL-delimited UTF-16LE strings ending in a double NUL
//   - REG_DWORD / REG_QWORD: 4/8-byte little-endian integers
//   - REG_DWORD_BIG_ENDIAN: 4-byte big-endian integer
//   - REG_BINARY: uninterpreted bytes
//   - REG_NONE, REG_LINK and the resource types: no interpreted payload
//
// The byte layout is a fixed external contract dictated by the host
// registry format and is reproduced bit-exactly.
//
// # Key Types
//
// Data is the decoded in-memory form: an immutable tagged value built
// through validating constructors (String, MultiString, U32, Binary, ...).
// Text is checked at construction, so Encode is total and never fails.
//
// Decode is the inverse. It never panics on malformed input: odd-length
// text buffers, missing terminators, unpaired surrogates, out-of-range
// tags and truncated integers all come back as typed errors the caller
// can match with errors.Is.
//
// # Usage
//
//	d, err := value.String("hello")
//	if err != nil { ... }
//	tag, raw := d.Encode()     // hand (tag, raw) to the store's write call
//
//	d, err := value.Decode(tag, raw) // raw as returned by the store's read
//	if errors.Is(err, value.ErrInvalidUTF16) { ... }
//
// The codec is stateless and safe for concurrent use. Decode takes
// ownership of the buffer it is handed (REG_BINARY results alias it);
// Encode always returns a freshly allocated buffer.
package value
