package value

import (
	"slices"

	"github.com/joshuapare/regkit/internal/buf"
	"github.com/joshuapare/regkit/internal/wide"
)

// Encode serializes d into its numeric type tag and wire bytes, ready to
// hand to the store's write primitive. See (Data).Encode.
func Encode(d Data) (uint32, []byte) { return d.Encode() }

// Encode returns the value's numeric type tag and the wire encoding of its
// payload. Encoding is total: any Data built through this package's
// constructors serializes without error, because text was validated at
// construction. The returned buffer is freshly allocated and owned by the
// caller.
func (d Data) Encode() (uint32, []byte) {
	tag := uint32(d.vt)
	switch d.vt {
	case TypeString, TypeExpandString:
		return tag, wide.Bytes(wide.AppendString(nil, d.str))
	case TypeBinary:
		return tag, slices.Clone(d.raw)
	case TypeU32:
		b := make([]byte, 4)
		buf.PutU32(b, uint32(d.num))
		return tag, b
	case TypeU32BE:
		b := make([]byte, 4)
		buf.PutU32BE(b, uint32(d.num))
		return tag, b
	case TypeU64:
		b := make([]byte, 8)
		buf.PutU64(b, d.num)
		return tag, b
	case TypeMultiString:
		return tag, encodeMultiString(d.list)
	default:
		// REG_NONE, REG_LINK and the resource types carry no payload.
		return tag, nil
	}
}

// encodeMultiString concatenates each entry's NUL-terminated UTF-16
// encoding and appends one extra zero code unit so the payload ends in a
// double NUL. An empty list still carries both terminator units; that is
// the shortest payload the decoder accepts, and it is how the host stores
// an empty REG_MULTI_SZ.
func encodeMultiString(list []string) []byte {
	n := 1 // trailing extra terminator
	for _, s := range list {
		n += len(s) + 1 // close enough; AppendString grows as needed
	}
	units := make([]uint16, 0, n)
	for _, s := range list {
		units = wide.AppendString(units, s)
	}
	units = append(units, 0)
	if len(list) == 0 {
		units = append(units, 0)
	}
	return wide.Bytes(units)
}
