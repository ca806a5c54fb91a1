package format

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/alphabet"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/operations"
)

var (
	ErrInvalidMagic     = errors.New("❌ invalid LXS magic")
	ErrInvalidVersion   = errors.New("❌ unsupported LXS version")
	ErrChecksumMismatch = errors.New("❌ checksum mismatch")
	ErrTruncatedShow    = errors.New("❌ truncated show file")
)

// Reader reads .lxs show files. Every structural check fails closed: a show
// that does not verify is never partially decoded.
type Reader struct {
	showPath string
	data     []byte
	index    *ShowIndex
	metadata *Metadata
	logger   hclog.Logger
}

// NewReader creates a new show reader
func NewReader(showPath string) *Reader {
	return NewReaderWithLogger(showPath, hclog.NewNullLogger())
}

// NewReaderWithLogger creates a new show reader with a custom logger
func NewReaderWithLogger(showPath string, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{showPath: showPath, logger: logger}
}

// Open reads the show file into memory
func (r *Reader) Open() error {
	if r.data != nil {
		return nil
	}
	data, err := os.ReadFile(r.showPath)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

// FromBytes builds a reader over in-memory show bytes.
func FromBytes(data []byte) *Reader {
	return &Reader{showPath: "(memory)", data: data, logger: hclog.NewNullLogger()}
}

// ReadIndex verifies the magic bookends and returns the validated index.
func (r *Reader) ReadIndex() (*ShowIndex, error) {
	if r.index != nil {
		return r.index, nil
	}
	if err := r.Open(); err != nil {
		return nil, err
	}
	if len(r.data) < MagicHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedShow, len(r.data))
	}
	if !bytes.Equal(r.data[0:4], BulbEmojiBytes) {
		return nil, fmt.Errorf("%w: bad start bookend", ErrInvalidMagic)
	}
	if !bytes.Equal(r.data[MagicHeaderSize-4:MagicHeaderSize], RainbowEmojiBytes) {
		return nil, fmt.Errorf("%w: bad end bookend", ErrInvalidMagic)
	}

	var idx ShowIndex
	if err := idx.Unpack(r.data[4 : MagicHeaderSize-4]); err != nil {
		return nil, err
	}
	if idx.FormatVersion != LXSVersion {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, idx.FormatVersion)
	}
	if idx.IndexChecksum != idx.Checksum() {
		return nil, fmt.Errorf("%w: index adler32", ErrChecksumMismatch)
	}
	if idx.ShowSize != uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: index says %d bytes, file has %d",
			ErrTruncatedShow, idx.ShowSize, len(r.data))
	}

	r.logger.Debug("🔍 Index verified",
		"events", idx.EventCount,
		"chunk_bits", idx.ChunkBits,
		"operations", operations.OperationsToString(idx.Operations),
	)
	r.index = &idx
	return r.index, nil
}

// section bounds-checks and slices one block out of the file.
func (r *Reader) section(offset, size uint64, name string) ([]byte, error) {
	end := offset + size
	if end < offset || end > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: %s [%d:%d]", ErrTruncatedShow, name, offset, end)
	}
	return r.data[offset:end], nil
}

// ReadMetadata returns the verified, decompressed metadata block.
func (r *Reader) ReadMetadata() (*Metadata, error) {
	if r.metadata != nil {
		return r.metadata, nil
	}
	idx, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	stored, err := r.section(idx.MetadataOffset, idx.MetadataSize, "metadata")
	if err != nil {
		return nil, err
	}
	if sha256.Sum256(stored) != idx.MetadataChecksum {
		return nil, fmt.Errorf("%w: metadata sha256", ErrChecksumMismatch)
	}

	gr, err := gzip.NewReader(bytes.NewReader(stored))
	if err != nil {
		return nil, fmt.Errorf("decompressing metadata: %w", err)
	}
	defer gr.Close()
	metaJSON, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("decompressing metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	r.metadata = &meta
	return r.metadata, nil
}

// ReadShow verifies the file end to end and reconstructs the light show.
func (r *Reader) ReadShow() (*codec.LightShow, error) {
	idx, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	alpha, err := alphabet.ForID(int(idx.AlphabetID))
	if err != nil {
		return nil, err
	}
	if int(idx.ChunkBits) != alpha.ChunkBits() {
		return nil, fmt.Errorf("%w: chunk bits %d do not match alphabet %s",
			codec.ErrCorruptShow, idx.ChunkBits, alpha.Name())
	}

	stored, err := r.section(idx.EventTableOffset, idx.EventTableSize, "event table")
	if err != nil {
		return nil, err
	}
	if sha256.Sum256(stored) != idx.PayloadChecksum {
		return nil, fmt.Errorf("%w: event table sha256", ErrChecksumMismatch)
	}

	raw, err := operations.ReverseChain(stored, operations.UnpackOperations(idx.Operations))
	if err != nil {
		return nil, fmt.Errorf("reversing operation chain: %w", err)
	}
	if uint64(len(raw)) != idx.EventTableRawSize {
		return nil, fmt.Errorf("%w: reversed event table is %d bytes, index says %d",
			codec.ErrCorruptShow, len(raw), idx.EventTableRawSize)
	}

	events, err := UnpackEvents(raw, alpha)
	if err != nil {
		return nil, err
	}
	if uint32(len(events)) != idx.EventCount {
		return nil, fmt.Errorf("%w: %d events, index says %d",
			codec.ErrCorruptShow, len(events), idx.EventCount)
	}

	show := &codec.LightShow{
		Header: codec.Header{
			SymbolCount: int(idx.EventCount),
			ChunkBits:   int(idx.ChunkBits),
			PadBits:     int(idx.PadBits),
		},
		Events: events,
	}
	r.logger.Info("🎬 Show loaded", "events", len(events), "path", r.showPath)
	return show, nil
}

// Verify checks every structural invariant without decoding.
func (r *Reader) Verify() error {
	if _, err := r.ReadMetadata(); err != nil {
		return err
	}
	show, err := r.ReadShow()
	if err != nil {
		return err
	}
	// The decode itself validates pad bits and symbol ranges.
	if _, err := codec.Decode(show); err != nil {
		return err
	}
	return nil
}
