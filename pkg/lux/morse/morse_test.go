package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
)

func TestScheduleHI(t *testing.T) {
	// "HI" chunks to S, E and the trailing space symbol.
	show, err := codec.Encode([]byte("HI"), codec.Options{})
	require.NoError(t, err)
	require.Equal(t, []rune{'S', 'E', ' '}, symbols(show))

	pulses, err := Schedule(show)
	require.NoError(t, err)

	// S: dot gap dot gap dot, char gap, E: dot, then the space pulse.
	// No character gap is inserted before a word gap.
	require.Len(t, pulses, 8)

	wantGaps := []bool{false, true, false, true, false, true, false, true}
	for i, p := range pulses {
		assert.Equal(t, wantGaps[i], p.IsGap, "pulse %d", i)
	}

	sWavelength := color.Wavelength(show.Events[0].Color)
	for _, p := range pulses[:5] {
		if !p.IsGap {
			assert.Equal(t, 'S', p.Symbol)
			assert.Equal(t, ".", p.Morse)
			assert.Equal(t, DotDurationMs, p.DurationMs)
			assert.Equal(t, sWavelength, p.WavelengthNm)
		} else {
			assert.Equal(t, IntraCharGapMs, p.DurationMs)
			assert.Zero(t, p.WavelengthNm)
		}
	}

	assert.Equal(t, CharGapMs, pulses[5].DurationMs)

	assert.Equal(t, 'E', pulses[6].Symbol)
	assert.Equal(t, DotDurationMs, pulses[6].DurationMs)

	// Space is transmitted as a long 637 nm pulse, not dark time.
	space := pulses[7]
	assert.True(t, space.IsGap)
	assert.Equal(t, float64(SpaceWavelength), space.WavelengthNm)
	assert.Equal(t, WordGapMs, space.DurationMs)
	assert.Equal(t, "SPACE", space.Morse)
}

func TestScheduleDashes(t *testing.T) {
	show := showFor(t, 'T', 'O')
	pulses, err := Schedule(show)
	require.NoError(t, err)

	// T: dash, char gap, O: dash gap dash gap dash.
	require.Len(t, pulses, 7)
	assert.Equal(t, DashDurationMs, pulses[0].DurationMs)
	assert.Equal(t, "-", pulses[0].Morse)
	for _, p := range pulses[2:] {
		if !p.IsGap {
			assert.Equal(t, DashDurationMs, p.DurationMs)
			assert.Equal(t, 'O', p.Symbol)
		}
	}
}

func TestScheduleFallbackPattern(t *testing.T) {
	// Symbols without a Morse table entry transmit the fallback pattern.
	show := &codec.LightShow{
		Header: codec.Header{SymbolCount: 1, ChunkBits: 7},
		Events: []codec.Event{{
			Index:    64,
			Symbol:   'a',
			Color:    color.ForIndex(64, 128),
			Duration: codec.DefaultDurationMs,
		}},
	}
	pulses, err := Schedule(show)
	require.NoError(t, err)

	var marks string
	for _, p := range pulses {
		if !p.IsGap {
			marks += p.Morse
		}
	}
	assert.Equal(t, fallbackPattern, marks)
}

func TestScheduleNilShow(t *testing.T) {
	_, err := Schedule(nil)
	require.ErrorIs(t, err, codec.ErrCorruptShow)
}

func TestSummarize(t *testing.T) {
	show, err := codec.Encode([]byte("HI"), codec.Options{})
	require.NoError(t, err)
	pulses, err := Schedule(show)
	require.NoError(t, err)

	stats := Summarize(pulses)
	// 4 dots, 2 intra gaps, 1 char gap, 1 word pulse:
	// 4*5 + 2*5 + 15 + 35 = 80ms.
	assert.Equal(t, 80, stats.TotalDurationMs)
	assert.Equal(t, 4, stats.PulseCount)
	// S, E and the 637nm space carrier.
	assert.Equal(t, 3, stats.UniqueWavelengths)
}

func symbols(show *codec.LightShow) []rune {
	out := make([]rune, len(show.Events))
	for i, ev := range show.Events {
		out[i] = ev.Symbol
	}
	return out
}

func showFor(t *testing.T, syms ...rune) *codec.LightShow {
	t.Helper()
	events := make([]codec.Event, len(syms))
	for i, s := range syms {
		idx := int(s - 'A')
		events[i] = codec.Event{
			Index:    idx,
			Symbol:   s,
			Color:    color.ForIndex(idx, 64),
			Duration: codec.DefaultDurationMs,
		}
	}
	return &codec.LightShow{
		Header: codec.Header{SymbolCount: len(events), ChunkBits: 6},
		Events: events,
	}
}
