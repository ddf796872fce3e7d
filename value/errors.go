package value

import "errors"

// Decode failures. All are recoverable, typed errors; the codec never
// panics on malformed input and never substitutes a default value.
var (
	// ErrUnhandledType indicates a numeric type tag outside the known 0..11 range.
	ErrUnhandledType = errors.New("value: unhandled type")

	// ErrInvalidBufferSize indicates an odd-length buffer for a UTF-16 payload.
	ErrInvalidBufferSize = errors.New("value: invalid buffer size for utf-16 payload")

	// ErrMissingNul indicates a string payload without a terminating NUL code unit.
	ErrMissingNul = errors.New("value: missing nul terminator in string")

	// ErrMissingMultiNul indicates a multi-string payload that does not end
	// in two zero code units (or is too short to contain them).
	ErrMissingMultiNul = errors.New("value: missing double nul terminator in multi string")

	// ErrInvalidUTF16 indicates a malformed code unit sequence, such as an
	// unpaired surrogate.
	ErrInvalidUTF16 = errors.New("value: invalid utf-16")

	// ErrTruncated indicates a numeric payload shorter than its declared width.
	ErrTruncated = errors.New("value: truncated payload")
)

// Construction failures. Text is validated when a Data is built so that
// Encode never has an error path.
var (
	// ErrEmbeddedNul indicates text containing a NUL character, which the
	// NUL-terminated wire form cannot represent.
	ErrEmbeddedNul = errors.New("value: embedded nul in string")

	// ErrInvalidText indicates text that is not valid UTF-8 and therefore
	// has no UTF-16 representation.
	ErrInvalidText = errors.New("value: text is not valid utf-8")
)
