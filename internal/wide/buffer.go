package wide

import "unsafe"

// Buffer is a byte buffer backed by uint16 storage, so its contents can be
// reinterpreted as UTF-16 code units without a copy and without relying on
// the alignment of an ordinary []byte allocation. It exists for the host
// API boundary: the registry's query primitive writes raw bytes into a
// caller-supplied buffer that is then read back as code units.
//
// The byte view is in native byte order. Every platform with a host
// registry is little-endian, which matches the UTF-16LE wire format; the
// copying Units path is the fallback for buffers we did not allocate.
type Buffer struct {
	units []uint16
	size  int
}

// NewBuffer returns a zero-initialized buffer of exactly size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{units: make([]uint16, (size+1)/2), size: size}
}

// Len returns the buffer's byte length.
func (b *Buffer) Len() int { return b.size }

// Bytes returns the byte view of the buffer. The slice aliases the uint16
// backing, so bytes written through it are visible to CodeUnits.
func (b *Buffer) Bytes() []byte {
	if b.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.units[0])), b.size)
}

// CodeUnits consumes the buffer and returns its contents as UTF-16 code
// units, without copying. An odd-sized buffer is padded with one zero byte;
// the pad is the untouched high byte of the final unit, which the
// allocation zeroed and Bytes never exposes.
//
// The buffer must not be used after this call.
func (b *Buffer) CodeUnits() []uint16 {
	units := b.units
	b.units = nil
	b.size = 0
	return units
}
