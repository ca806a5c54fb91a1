package format

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/alphabet"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/operations"

	// Register the compression operations used in .lxs chains.
	_ "github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/operations/compress"
)

// WriteOptions control how a show is serialized.
type WriteOptions struct {
	ShowName    string
	SourceBytes int64
	Operations  uint64 // packed operation chain applied to the event table
}

// Writer serializes light shows into .lxs files.
type Writer struct {
	logger hclog.Logger
}

// NewWriter creates a writer with a null logger.
func NewWriter() *Writer {
	return NewWriterWithLogger(hclog.NewNullLogger())
}

// NewWriterWithLogger creates a writer with a custom logger.
func NewWriterWithLogger(logger hclog.Logger) *Writer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{logger: logger}
}

// WriteShow serializes a show to .lxs bytes.
//
// Layout: 💡 + index (248B) + 🌈 + metadata (gzip JSON) + event table
// (operation chain applied). Output is deterministic: same show, same bytes.
func (w *Writer) WriteShow(show *codec.LightShow, opts WriteOptions) ([]byte, error) {
	alpha, err := alphabet.ForChunkBits(show.Header.ChunkBits)
	if err != nil {
		return nil, err
	}
	if show.Header.SymbolCount != len(show.Events) {
		return nil, fmt.Errorf("%w: header says %d symbols, show has %d",
			codec.ErrCorruptShow, show.Header.SymbolCount, len(show.Events))
	}

	// Pack and transform the event table
	rawEvents, err := PackEvents(show.Events)
	if err != nil {
		return nil, err
	}
	opChain := operations.UnpackOperations(opts.Operations)
	storedEvents, err := operations.ApplyChain(rawEvents, opChain)
	if err != nil {
		return nil, fmt.Errorf("applying operation chain: %w", err)
	}
	w.logger.Debug("📦 Packed event table",
		"events", len(show.Events),
		"raw_size", len(rawEvents),
		"stored_size", len(storedEvents),
		"operations", operations.OperationsToString(opts.Operations),
	)

	// Build the metadata block
	category := "raw-binary"
	if len(show.Events) > 0 {
		category = show.Events[0].Category.String()
	}
	meta := Metadata{
		Format:        FormatName,
		FormatVersion: fmt.Sprintf("0x%08x", uint32(LXSVersion)),
		Show: ShowInfo{
			Name:        opts.ShowName,
			SourceBytes: opts.SourceBytes,
			Alphabet:    alpha.Name(),
			Category:    category,
			Operations:  operations.OperationsToString(opts.Operations),
		},
		Encoder: EncoderInfo{Tool: ToolName, ToolVersion: ToolVersion},
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata: %w", err)
	}
	var metaBuf bytes.Buffer
	gw := gzip.NewWriter(&metaBuf)
	if _, err := gw.Write(metaJSON); err != nil {
		gw.Close()
		return nil, fmt.Errorf("compressing metadata: %w", err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("compressing metadata: %w", err)
	}
	storedMeta := metaBuf.Bytes()

	// Assemble the index
	idx := ShowIndex{
		FormatVersion:     LXSVersion,
		MetadataOffset:    uint64(MagicHeaderSize),
		MetadataSize:      uint64(len(storedMeta)),
		EventTableOffset:  uint64(MagicHeaderSize + len(storedMeta)),
		EventTableSize:    uint64(len(storedEvents)),
		EventTableRawSize: uint64(len(rawEvents)),
		Operations:        opts.Operations,
		EventCount:        uint32(show.Header.SymbolCount),
		ChunkBits:         uint8(show.Header.ChunkBits),
		PadBits:           uint8(show.Header.PadBits),
		AlphabetID:        uint8(alpha.ID()),
		PayloadChecksum:   sha256.Sum256(storedEvents),
		MetadataChecksum:  sha256.Sum256(storedMeta),
	}
	if len(show.Events) > 0 {
		idx.Category = uint8(show.Events[0].Category)
	}
	idx.ShowSize = uint64(MagicHeaderSize + len(storedMeta) + len(storedEvents))
	idx.IndexChecksum = idx.Checksum()

	// Final payload
	out := make([]byte, 0, idx.ShowSize)
	out = append(out, BulbEmojiBytes...)
	out = append(out, idx.Pack()...)
	out = append(out, RainbowEmojiBytes...)
	out = append(out, storedMeta...)
	out = append(out, storedEvents...)

	w.logger.Info("✨ Show serialized",
		"size", len(out),
		"events", idx.EventCount,
		"chunk_bits", idx.ChunkBits,
		"pad_bits", idx.PadBits,
	)
	return out, nil
}

// WriteFile serializes a show and writes it to path.
func (w *Writer) WriteFile(path string, show *codec.LightShow, opts WriteOptions) error {
	data, err := w.WriteShow(show, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, FilePerms); err != nil {
		return fmt.Errorf("writing show file: %w", err)
	}
	w.logger.Info("💾 Show written", "path", path, "size", len(data))
	return nil
}
