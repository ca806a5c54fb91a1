package format

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/alphabet"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
)

// Event record binary layout (16 bytes, little-endian):
//
//	[0]     symbol index
//	[1]     category
//	[2:4]   duration in milliseconds
//	[4:8]   hue (float32)
//	[8:12]  saturation (float32)
//	[12:16] lightness (float32)
//
// The symbol index is the decode ground truth; the color triple is carried
// so a player never has to re-derive presentation state.

// PackEvents serializes a show's events into the raw event table.
func PackEvents(events []codec.Event) ([]byte, error) {
	buf := make([]byte, len(events)*EventRecordSize)
	for i, ev := range events {
		if ev.Index < 0 || ev.Index > 0xFF {
			return nil, fmt.Errorf("event %d: index %d does not fit a record", i, ev.Index)
		}
		rec := buf[i*EventRecordSize:]
		rec[0] = uint8(ev.Index)
		rec[1] = uint8(ev.Category)
		binary.LittleEndian.PutUint16(rec[2:4], ev.Duration)
		binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(float32(ev.Color.Hue)))
		binary.LittleEndian.PutUint32(rec[8:12], math.Float32bits(float32(ev.Color.Saturation)))
		binary.LittleEndian.PutUint32(rec[12:16], math.Float32bits(float32(ev.Color.Lightness)))
	}
	return buf, nil
}

// UnpackEvents deserializes the raw event table against an alphabet.
// Indices outside the alphabet fail closed.
func UnpackEvents(data []byte, alpha *alphabet.Alphabet) ([]codec.Event, error) {
	if len(data)%EventRecordSize != 0 {
		return nil, fmt.Errorf("%w: event table size %d not a record multiple",
			codec.ErrCorruptShow, len(data))
	}
	count := len(data) / EventRecordSize
	events := make([]codec.Event, count)
	for i := 0; i < count; i++ {
		rec := data[i*EventRecordSize:]
		idx := int(rec[0])
		sym, err := alpha.Symbol(idx)
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", codec.ErrCorruptShow, i, err)
		}
		events[i] = codec.Event{
			Index:    idx,
			Symbol:   sym,
			Category: color.Category(rec[1]),
			Duration: binary.LittleEndian.Uint16(rec[2:4]),
			Color: color.Descriptor{
				Hue:        float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[4:8]))),
				Saturation: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[8:12]))),
				Lightness:  float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[12:16]))),
			},
		}
	}
	return events, nil
}
