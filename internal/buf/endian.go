package buf

import "encoding/binary"

// Integer reads and writes for registry value payloads. The host registry
// stores REG_DWORD and REG_QWORD little-endian; REG_DWORD_BIG_ENDIAN is the
// single big-endian case.
//
// Callers are expected to have checked lengths already (see Has/Slice);
// these helpers assume b is long enough.
//
// Implementation note: encoding/binary is used directly. Benchmarking the
// unsafe alternatives showed no measurable benefit; the compiler inlines
// these calls into single loads and stores.

// U16LE reads a little-endian uint16 from the start of b.
func U16LE(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from the start of b.
func U32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// U32BE reads a big-endian uint32 from the start of b.
func U32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from the start of b.
func U64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// PutU16 writes v to the start of b in little-endian order.
func PutU16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// PutU32 writes v to the start of b in little-endian order.
func PutU32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutU32BE writes v to the start of b in big-endian order.
func PutU32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// PutU64 writes v to the start of b in little-endian order.
func PutU64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}
