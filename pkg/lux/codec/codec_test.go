package codec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/alphabet"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
)

// "HI" is 0x48 0x49: bits 01001000 01001001 split into 6-bit chunks
// 010010 000100 1001(00) = indices 18, 4, 36 with 2 pad bits.
func TestBinaryToSymbolsHI(t *testing.T) {
	indices, padBits, err := BinaryToSymbols([]byte("HI"), alphabet.ChunkBits6)
	require.NoError(t, err)
	assert.Equal(t, []int{18, 4, 36}, indices)
	assert.Equal(t, 2, padBits)

	back, err := SymbolsToBinary(indices, alphabet.ChunkBits6, padBits)
	require.NoError(t, err)
	assert.Equal(t, []byte("HI"), back)
}

func TestBinaryToSymbolsEmpty(t *testing.T) {
	_, _, err := BinaryToSymbols(nil, alphabet.ChunkBits6)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, _, err = BinaryToSymbols([]byte{}, alphabet.ChunkBits7)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Encode(nil, Options{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestBinaryToSymbolsBadChunkBits(t *testing.T) {
	_, _, err := BinaryToSymbols([]byte{0x01}, 5)
	require.ErrorIs(t, err, alphabet.ErrChunkBits)
}

func TestRoundTripLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(0x1085))
	for _, chunkBits := range []int{alphabet.ChunkBits6, alphabet.ChunkBits7} {
		for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 16, 63, 64, 255, 4096} {
			data := make([]byte, n)
			_, err := rng.Read(data)
			require.NoError(t, err)

			show, err := Encode(data, Options{ChunkBits: chunkBits})
			require.NoError(t, err, "encode %d bytes at %d bits", n, chunkBits)
			require.Equal(t, chunkBits, show.Header.ChunkBits)
			require.Len(t, show.Events, show.Header.SymbolCount)

			out, err := Decode(show)
			require.NoError(t, err, "decode %d bytes at %d bits", n, chunkBits)
			assert.Equal(t, data, out)
		}
	}
}

func TestRoundTripAllBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for _, chunkBits := range []int{alphabet.ChunkBits6, alphabet.ChunkBits7} {
		show, err := Encode(data, Options{ChunkBits: chunkBits})
		require.NoError(t, err)
		out, err := Decode(show)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	data := []byte("LUXBIN deterministic encode")
	a, err := Encode(data, Options{Category: color.CategoryNoun})
	require.NoError(t, err)
	b, err := Encode(data, Options{Category: color.CategoryNoun})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Category perturbs saturation/lightness only; hue and indices are identical
// across categories, so decode output never depends on the category.
func TestCategoryIndependence(t *testing.T) {
	data := []byte("THE QUICK BROWN FOX")
	base, err := Encode(data, Options{})
	require.NoError(t, err)

	for cat := color.CategoryRawBinary; cat <= color.CategoryPunctuation; cat++ {
		show, err := Encode(data, Options{Category: cat})
		require.NoError(t, err)
		for i, ev := range show.Events {
			assert.Equal(t, base.Events[i].Index, ev.Index)
			assert.Equal(t, base.Events[i].Color.Hue, ev.Color.Hue,
				"category %s changed hue at event %d", cat, i)
		}

		out, err := Decode(show)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}
}

func TestEncodeDurations(t *testing.T) {
	// The last "HI" chunk pads out to 100100 = 36, the space symbol, so a
	// single encode exercises both duration rules.
	show, err := Encode([]byte("HI"), Options{})
	require.NoError(t, err)
	require.Len(t, show.Events, 3)
	assert.Equal(t, uint16(DefaultDurationMs), show.Events[0].Duration)
	assert.Equal(t, uint16(DefaultDurationMs), show.Events[1].Duration)
	assert.Equal(t, uint16(SpaceDurationMs), show.Events[2].Duration)
	assert.Equal(t, ' ', show.Events[2].Symbol)
}

func TestSymbolsToBinaryFailClosed(t *testing.T) {
	testCases := []struct {
		name      string
		indices   []int
		chunkBits int
		padBits   int
	}{
		{"no symbols", nil, 6, 0},
		{"negative pad", []int{18, 4, 36}, 6, -1},
		{"pad exceeds chunk", []int{18, 4, 36}, 6, 6},
		{"not a byte multiple", []int{18, 4, 36}, 6, 1},
		{"index out of range", []int{18, 64, 36}, 6, 2},
		{"negative index", []int{-1, 4, 36}, 6, 2},
		{"non-zero pad bits", []int{18, 4, 37}, 6, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SymbolsToBinary(tc.indices, tc.chunkBits, tc.padBits)
			require.ErrorIs(t, err, ErrCorruptShow)
		})
	}
}

func TestDecodeFailClosed(t *testing.T) {
	show, err := Encode([]byte("HI"), Options{})
	require.NoError(t, err)

	_, err = Decode(nil)
	require.ErrorIs(t, err, ErrCorruptShow)

	mangled := *show
	mangled.Header.SymbolCount = len(show.Events) + 1
	_, err = Decode(&mangled)
	require.ErrorIs(t, err, ErrCorruptShow)

	bad := *show
	bad.Events = append([]Event(nil), show.Events...)
	bad.Events[1].Index = 99
	_, err = Decode(&bad)
	require.ErrorIs(t, err, ErrCorruptShow)
}

func TestSevenBitPrefixCompatible(t *testing.T) {
	// 7-bit chunking of 7 bytes is exactly 8 symbols with no padding.
	data := []byte{0xFF, 0x00, 0xAA, 0x55, 0x0F, 0xF0, 0x81}
	show, err := Encode(data, Options{ChunkBits: alphabet.ChunkBits7})
	require.NoError(t, err)
	assert.Equal(t, 0, show.Header.PadBits)
	assert.Len(t, show.Events, 8)

	out, err := Decode(show)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, out))
}
