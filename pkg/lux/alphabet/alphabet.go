// Package alphabet defines the fixed symbol tables used by the LUXBIN codec.
//
// An alphabet assigns every chunk value (the integer read from a fixed-width
// bit group) exactly one symbol, and every symbol exactly one index. The
// tables are process-wide constants: they are built once at init time and
// never mutated afterwards.
package alphabet

import (
	"errors"
	"fmt"
)

var (
	ErrChunkBits     = errors.New("❌ unsupported chunk width")
	ErrIndexRange    = errors.New("❌ symbol index out of alphabet range")
	ErrUnknownSymbol = errors.New("❌ symbol not in alphabet")
)

// Chunk widths supported by the codec.
const (
	ChunkBits6 = 6 // 64-symbol base alphabet
	ChunkBits7 = 7 // 128-symbol extended alphabet
)

// Alphabet IDs stored in the .lxs index.
const (
	IDBase64      = 1
	IDExtended128 = 2
)

// base64Symbols is the 64-symbol table for 6-bit chunking:
// A-Z (0-25), 0-9 (26-35), space (36), then 27 punctuation marks (37-63).
// The set and order mirror the original LUXBIN character table.
const base64Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,!?;:-()[]{}@#$%^&*+=_~`<>"

// extended128Extra extends the base table to 128 symbols for 7-bit chunking:
// lowercase letters, the five printable ASCII marks absent from the base
// table, and 33 Latin-1 supplement characters (U+00A1..U+00C1). Decoding is
// driven by indices, so the extra glyphs are presentation only.
const extended128Extra = `abcdefghijklmnopqrstuvwxyz"'/\|` +
	"¡¢£¤¥¦§¨©ª«" +
	"¬­®¯°±²³´µ¶" +
	"·¸¹º»¼½¾¿ÀÁ"

// Alphabet is an immutable, total index<->symbol mapping.
type Alphabet struct {
	id        int
	name      string
	chunkBits int
	symbols   []rune
	indexOf   map[rune]int
}

var (
	// Base64 is the 64-symbol alphabet for 6-bit chunks.
	Base64 = build(IDBase64, "base64", ChunkBits6, base64Symbols)

	// Extended128 is the 128-symbol alphabet for 7-bit chunks.
	Extended128 = build(IDExtended128, "extended128", ChunkBits7, base64Symbols+extended128Extra)
)

func build(id int, name string, chunkBits int, symbols string) *Alphabet {
	runes := []rune(symbols)
	want := 1 << chunkBits
	if len(runes) != want {
		panic(fmt.Sprintf("alphabet %s: %d symbols, need %d", name, len(runes), want))
	}
	idx := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := idx[r]; dup {
			panic(fmt.Sprintf("alphabet %s: duplicate symbol %q", name, r))
		}
		idx[r] = i
	}
	return &Alphabet{id: id, name: name, chunkBits: chunkBits, symbols: runes, indexOf: idx}
}

// ForChunkBits returns the alphabet matching a chunk width.
func ForChunkBits(bits int) (*Alphabet, error) {
	switch bits {
	case ChunkBits6:
		return Base64, nil
	case ChunkBits7:
		return Extended128, nil
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrChunkBits, bits)
	}
}

// ForID returns the alphabet matching an .lxs alphabet ID.
func ForID(id int) (*Alphabet, error) {
	switch id {
	case IDBase64:
		return Base64, nil
	case IDExtended128:
		return Extended128, nil
	default:
		return nil, fmt.Errorf("%w: unknown alphabet id %d", ErrUnknownSymbol, id)
	}
}

// ID returns the alphabet's wire identifier.
func (a *Alphabet) ID() int { return a.id }

// Name returns the alphabet's human-readable name.
func (a *Alphabet) Name() string { return a.name }

// ChunkBits returns the chunk width this alphabet serves.
func (a *Alphabet) ChunkBits() int { return a.chunkBits }

// Size returns the number of symbols (always 1<<ChunkBits).
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbol returns the rune for an index.
func (a *Alphabet) Symbol(index int) (rune, error) {
	if index < 0 || index >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexRange, index, len(a.symbols))
	}
	return a.symbols[index], nil
}

// IndexOf returns the index for a rune.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.indexOf[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
	}
	return i, nil
}

// SpaceIndex is the index of the space symbol, which gets the long duration.
const SpaceIndex = 36
