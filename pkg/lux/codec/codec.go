// Package codec implements the LUXBIN core: a deterministic, reversible
// mapping between arbitrary byte buffers and light shows.
//
// Encoding reads the input as a contiguous MSB-first bitstream, partitions it
// into fixed-width chunks (6 or 7 bits), and maps each chunk value to an
// alphabet index. The final short chunk is right-padded with zero bits and
// the pad width is recorded in the show header so decoding reconstructs the
// exact original bytes.
//
// Symbol indices are the only decode input. Colors, durations and
// wavelengths are presentation attributes.
package codec

import (
	"errors"
	"fmt"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/alphabet"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
)

var (
	// ErrEmptyInput: empty buffers are rejected rather than encoded to an
	// empty show. Policy decision, covered by tests.
	ErrEmptyInput = errors.New("❌ empty input")

	ErrCorruptShow = errors.New("❌ corrupt light show")
)

// Event durations in milliseconds. Space is transmitted long, matching the
// original word-gap timing; everything else gets the dash duration.
const (
	DefaultDurationMs = 15
	SpaceDurationMs   = 35
)

// Header carries the reconstruction metadata for one show.
type Header struct {
	SymbolCount int
	ChunkBits   int
	PadBits     int
}

// Event is one (symbol, color, duration) record.
type Event struct {
	Index    int
	Symbol   rune
	Color    color.Descriptor
	Duration uint16 // milliseconds
	Category color.Category
}

// LightShow is the full ordered event sequence plus header for one input.
type LightShow struct {
	Header Header
	Events []Event
}

// Options adjust presentation attributes of an encode. The zero value
// produces the default 6-bit raw-binary show.
type Options struct {
	ChunkBits int            // 0 means ChunkBits6
	Category  color.Category // applied to every event; hue never changes
	Theme     *color.Theme   // optional saturation/lightness overrides
}

// BinaryToSymbols chunks data into chunkBits-wide groups and returns the
// alphabet indices plus the number of zero pad bits in the final chunk.
func BinaryToSymbols(data []byte, chunkBits int) ([]int, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if _, err := alphabet.ForChunkBits(chunkBits); err != nil {
		return nil, 0, err
	}

	totalBits := len(data) * 8
	count := (totalBits + chunkBits - 1) / chunkBits
	padBits := count*chunkBits - totalBits

	indices := make([]int, 0, count)
	var acc uint
	bits := 0
	for _, b := range data {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= chunkBits {
			bits -= chunkBits
			indices = append(indices, int(acc>>uint(bits)))
			acc &= (1 << uint(bits)) - 1
		}
	}
	if bits > 0 {
		indices = append(indices, int(acc<<uint(chunkBits-bits)))
	}
	return indices, padBits, nil
}

// SymbolsToBinary is the exact inverse of BinaryToSymbols. It validates the
// indices against the alphabet and the pad width against the symbol count,
// failing closed on any inconsistency.
func SymbolsToBinary(indices []int, chunkBits, padBits int) ([]byte, error) {
	alpha, err := alphabet.ForChunkBits(chunkBits)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrCorruptShow)
	}
	if padBits < 0 || padBits >= chunkBits {
		return nil, fmt.Errorf("%w: pad bits %d for %d-bit chunks", ErrCorruptShow, padBits, chunkBits)
	}
	totalBits := len(indices)*chunkBits - padBits
	if totalBits%8 != 0 {
		return nil, fmt.Errorf("%w: %d symbols with %d pad bits is not a whole byte count",
			ErrCorruptShow, len(indices), padBits)
	}

	out := make([]byte, 0, totalBits/8)
	var acc uint
	bits := 0
	for _, idx := range indices {
		if idx < 0 || idx >= alpha.Size() {
			return nil, fmt.Errorf("%w: index %d outside %s", ErrCorruptShow, idx, alpha.Name())
		}
		acc = acc<<uint(chunkBits) | uint(idx)
		bits += chunkBits
		for bits >= 8 && len(out) < totalBits/8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
			acc &= (1 << uint(bits)) - 1
		}
	}
	// Whatever remains must be the zero padding.
	if acc != 0 {
		return nil, fmt.Errorf("%w: non-zero pad bits", ErrCorruptShow)
	}
	return out, nil
}

// Encode produces the light show for data.
func Encode(data []byte, opts Options) (*LightShow, error) {
	chunkBits := opts.ChunkBits
	if chunkBits == 0 {
		chunkBits = alphabet.ChunkBits6
	}
	alpha, err := alphabet.ForChunkBits(chunkBits)
	if err != nil {
		return nil, err
	}

	indices, padBits, err := BinaryToSymbols(data, chunkBits)
	if err != nil {
		return nil, err
	}

	events := make([]Event, len(indices))
	for i, idx := range indices {
		sym, err := alpha.Symbol(idx)
		if err != nil {
			return nil, err
		}
		dur := uint16(DefaultDurationMs)
		if idx == alphabet.SpaceIndex {
			dur = SpaceDurationMs
		}
		events[i] = Event{
			Index:    idx,
			Symbol:   sym,
			Color:    opts.Theme.Apply(idx, alpha.Size(), opts.Category),
			Duration: dur,
			Category: opts.Category,
		}
	}

	return &LightShow{
		Header: Header{SymbolCount: len(indices), ChunkBits: chunkBits, PadBits: padBits},
		Events: events,
	}, nil
}

// Decode reconstructs the original bytes from a show. Only the events'
// symbol indices and the header are consulted.
func Decode(show *LightShow) ([]byte, error) {
	if show == nil {
		return nil, fmt.Errorf("%w: nil show", ErrCorruptShow)
	}
	if show.Header.SymbolCount != len(show.Events) {
		return nil, fmt.Errorf("%w: header says %d symbols, show has %d",
			ErrCorruptShow, show.Header.SymbolCount, len(show.Events))
	}
	indices := make([]int, len(show.Events))
	for i, ev := range show.Events {
		indices[i] = ev.Index
	}
	return SymbolsToBinary(indices, show.Header.ChunkBits, show.Header.PadBits)
}
