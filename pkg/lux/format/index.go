package format

import (
	"encoding/binary"
	"fmt"
	"hash/adler32"
)

// ShowIndex is the LXS/2026 index block (248 bytes packed).
// It carries everything a reader needs to locate, verify and reverse the
// event payload: offsets, sizes, the packed operation chain, checksums and
// the reconstruction header (event count, chunk bits, pad bits).
type ShowIndex struct {
	// Core identification (8 bytes)
	FormatVersion uint32 // 0x20260001
	IndexChecksum uint32 // Adler-32 of index block (with this field as 0)

	// File structure (48 bytes)
	ShowSize          uint64 // Total file size
	MetadataOffset    uint64 // Offset to metadata block
	MetadataSize      uint64 // Size of metadata block (gzip JSON)
	EventTableOffset  uint64 // Offset to event table
	EventTableSize    uint64 // Size of event table as stored (after operations)
	EventTableRawSize uint64 // Size of event table before operations

	// Payload transformation (8 bytes)
	Operations uint64 // Packed operation chain (up to 8 ops)

	// Reconstruction header (12 bytes)
	EventCount uint32 // Number of light events
	ChunkBits  uint8  // Bits per symbol (6 or 7)
	PadBits    uint8  // Zero pad bits in the final chunk
	AlphabetID uint8  // Alphabet identifier
	Category   uint8  // Category tag applied at encode time
	Flags      uint32 // Feature flags

	// Integrity (64 bytes)
	PayloadChecksum  [32]byte // SHA-256 of the stored event table
	MetadataChecksum [32]byte // SHA-256 of the stored metadata block

	// Reserved for future use (108 bytes)
	Reserved [108]byte
}

// Pack serializes the index to bytes
func (idx *ShowIndex) Pack() []byte {
	buf := make([]byte, IndexSize)

	binary.LittleEndian.PutUint32(buf[0:4], idx.FormatVersion)
	binary.LittleEndian.PutUint32(buf[4:8], idx.IndexChecksum)
	binary.LittleEndian.PutUint64(buf[8:16], idx.ShowSize)
	binary.LittleEndian.PutUint64(buf[16:24], idx.MetadataOffset)
	binary.LittleEndian.PutUint64(buf[24:32], idx.MetadataSize)
	binary.LittleEndian.PutUint64(buf[32:40], idx.EventTableOffset)
	binary.LittleEndian.PutUint64(buf[40:48], idx.EventTableSize)
	binary.LittleEndian.PutUint64(buf[48:56], idx.EventTableRawSize)
	binary.LittleEndian.PutUint64(buf[56:64], idx.Operations)
	binary.LittleEndian.PutUint32(buf[64:68], idx.EventCount)
	buf[68] = idx.ChunkBits
	buf[69] = idx.PadBits
	buf[70] = idx.AlphabetID
	buf[71] = idx.Category
	binary.LittleEndian.PutUint32(buf[72:76], idx.Flags)
	copy(buf[76:108], idx.PayloadChecksum[:])
	copy(buf[108:140], idx.MetadataChecksum[:])
	copy(buf[140:248], idx.Reserved[:])

	return buf
}

// Unpack deserializes the index from bytes
func (idx *ShowIndex) Unpack(data []byte) error {
	if len(data) != IndexSize {
		return fmt.Errorf("invalid index size: %d", len(data))
	}

	idx.FormatVersion = binary.LittleEndian.Uint32(data[0:4])
	idx.IndexChecksum = binary.LittleEndian.Uint32(data[4:8])
	idx.ShowSize = binary.LittleEndian.Uint64(data[8:16])
	idx.MetadataOffset = binary.LittleEndian.Uint64(data[16:24])
	idx.MetadataSize = binary.LittleEndian.Uint64(data[24:32])
	idx.EventTableOffset = binary.LittleEndian.Uint64(data[32:40])
	idx.EventTableSize = binary.LittleEndian.Uint64(data[40:48])
	idx.EventTableRawSize = binary.LittleEndian.Uint64(data[48:56])
	idx.Operations = binary.LittleEndian.Uint64(data[56:64])
	idx.EventCount = binary.LittleEndian.Uint32(data[64:68])
	idx.ChunkBits = data[68]
	idx.PadBits = data[69]
	idx.AlphabetID = data[70]
	idx.Category = data[71]
	idx.Flags = binary.LittleEndian.Uint32(data[72:76])
	copy(idx.PayloadChecksum[:], data[76:108])
	copy(idx.MetadataChecksum[:], data[108:140])
	copy(idx.Reserved[:], data[140:248])

	return nil
}

// Checksum computes the Adler-32 of the packed index with the
// IndexChecksum field zeroed.
func (idx *ShowIndex) Checksum() uint32 {
	saved := idx.IndexChecksum
	idx.IndexChecksum = 0
	sum := adler32.Checksum(idx.Pack())
	idx.IndexChecksum = saved
	return sum
}
