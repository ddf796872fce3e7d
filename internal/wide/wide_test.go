package wide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsRoundTrip(t *testing.T) {
	b := []byte{0x61, 0x00, 0x42, 0x30, 0x00, 0x00}
	units := Units(b)
	require.Equal(t, []uint16{0x0061, 0x3042, 0x0000}, units)
	assert.Equal(t, b, Bytes(units))
}

func TestUnitsIgnoresTrailingByte(t *testing.T) {
	units := Units([]byte{0x61, 0x00, 0x7F})
	assert.Equal(t, []uint16{0x0061}, units)
}

func TestAppendString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint16
	}{
		{"empty", "", []uint16{0}},
		{"ascii", "ab", []uint16{'a', 'b', 0}},
		{"bmp", "あ", []uint16{0x3042, 0}},
		{"astral", "\U0001F600", []uint16{0xD83D, 0xDE00, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendString(nil, tt.in))
		})
	}
}

func TestDecodeAll(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"empty", nil, ""},
		{"ascii fast path", []uint16{'h', 'i'}, "hi"},
		{"bmp", []uint16{0x3042, 0x3044}, "あい"},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, "\U0001F600"},
		{"mixed", []uint16{'x', 0x3042, 0xD83D, 0xDE00, 'y'}, "xあ\U0001F600y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAll(tt.units)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAllUnpairedSurrogate(t *testing.T) {
	malformed := [][]uint16{
		{0xD83D},              // lone high surrogate
		{0xDE00},              // lone low surrogate
		{0xD83D, 'x'},         // high surrogate followed by non-surrogate
		{'a', 0xD800, 0xD800}, // two high surrogates
	}
	for _, units := range malformed {
		_, err := DecodeAll(units)
		assert.ErrorIs(t, err, ErrUnpairedSurrogate, "units %v", units)
	}
}

func TestBufferBytesAliasUnits(t *testing.T) {
	b := NewBuffer(6)
	require.Equal(t, 6, b.Len())

	bs := b.Bytes()
	require.Len(t, bs, 6)
	copy(bs, []byte{0x61, 0x00, 0x62, 0x00, 0x00, 0x00})

	units := b.CodeUnits()
	assert.Equal(t, []uint16{'a', 'b', 0}, units)
}

func TestBufferOddSizePads(t *testing.T) {
	b := NewBuffer(3)
	require.Equal(t, 3, b.Len())

	bs := b.Bytes()
	require.Len(t, bs, 3)
	bs[0], bs[1], bs[2] = 0x61, 0x00, 0x62

	// The pad byte is zero, so the final unit is just the written low byte.
	units := b.CodeUnits()
	assert.Equal(t, []uint16{'a', 'b'}, units)
}

func TestBufferZeroSize(t *testing.T) {
	b := NewBuffer(0)
	assert.Nil(t, b.Bytes())
	assert.Empty(t, b.CodeUnits())
}

func TestBufferConsumed(t *testing.T) {
	b := NewBuffer(4)
	_ = b.CodeUnits()
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Bytes())
}
