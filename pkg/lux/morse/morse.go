// Package morse schedules a light show as timed Morse pulses.
//
// Each event's symbol maps to a Morse pattern transmitted at the symbol's
// wavelength: dots are short pulses, dashes long, with dark gaps inside and
// between characters. The schedule is presentation only and is never an
// input to decoding.
package morse

import (
	"fmt"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
)

// Morse timing (in milliseconds)
const (
	DotDurationMs   = 5  // Short pulse
	DashDurationMs  = 15 // Long pulse (3x dot)
	IntraCharGapMs  = 5  // Gap between dots/dashes in same character
	CharGapMs       = 15 // Gap between characters
	WordGapMs       = 35 // Gap between words (7x dot)
	SpaceWavelength = 637 // Space pulse wavelength in nm
)

// patterns maps base-alphabet symbols to Morse patterns.
var patterns = map[rune]string{
	// Letters
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	// Numbers
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	// Punctuation
	'.': ".-.-.-", ',': "--..--", '!': "-.-.--", '?': "..--..",
	';': "-.-.-.", ':': "---...", '-': "-....-", '(': "-.--.", ')': "-.--.-",
	'[': "-.--.", ']': "-.--.-", '{': "-.--.", '}': "-.--.-", '@': ".--.-.",
	'#': "....--", '$': "...-..-", '%': ".--.--", '^': ".-...", '&': ".-...",
	'*': "-..-", '+': ".-.-.", '=': "-...-", '_': "..--.-", '~': ".--..",
	'`': ".----.", '<': ".-..-", '>': ".-..-.",
}

// fallbackPattern is used for symbols without a table entry ('H').
const fallbackPattern = "...."

// Pulse is one timed emission (or gap) in a transmission.
type Pulse struct {
	WavelengthNm float64
	DurationMs   int
	Symbol       rune
	Morse        string
	IsGap        bool
}

// Schedule expands a show into timed pulses following the original Morse
// light rules: space becomes a long pulse at 637 nm, other symbols become
// their Morse pattern at the symbol's wavelength, with intra-character and
// inter-character dark gaps.
func Schedule(show *codec.LightShow) ([]Pulse, error) {
	if show == nil {
		return nil, fmt.Errorf("%w: nil show", codec.ErrCorruptShow)
	}
	var pulses []Pulse
	for i, ev := range show.Events {
		if ev.Symbol == ' ' {
			pulses = append(pulses, Pulse{
				WavelengthNm: SpaceWavelength,
				DurationMs:   WordGapMs,
				Symbol:       ev.Symbol,
				Morse:        "SPACE",
				IsGap:        true,
			})
			continue
		}

		wavelength := color.Wavelength(ev.Color)
		pattern, ok := patterns[ev.Symbol]
		if !ok {
			pattern = fallbackPattern
		}
		for j, mark := range pattern {
			dur := DotDurationMs
			if mark == '-' {
				dur = DashDurationMs
			}
			pulses = append(pulses, Pulse{
				WavelengthNm: wavelength,
				DurationMs:   dur,
				Symbol:       ev.Symbol,
				Morse:        string(mark),
				IsGap:        false,
			})
			// Intra-character gap, except after the last mark
			if j < len(pattern)-1 {
				pulses = append(pulses, Pulse{DurationMs: IntraCharGapMs, IsGap: true})
			}
		}
		// Gap between characters, except before a space or at the end
		if i < len(show.Events)-1 && show.Events[i+1].Symbol != ' ' {
			pulses = append(pulses, Pulse{DurationMs: CharGapMs, IsGap: true})
		}
	}
	return pulses, nil
}

// Stats summarizes a pulse schedule.
type Stats struct {
	TotalDurationMs   int
	PulseCount        int
	UniqueWavelengths int
}

// Summarize computes transmission statistics for a schedule.
func Summarize(pulses []Pulse) Stats {
	seen := make(map[float64]struct{})
	var s Stats
	for _, p := range pulses {
		s.TotalDurationMs += p.DurationMs
		if !p.IsGap {
			s.PulseCount++
		}
		if p.WavelengthNm > 0 {
			seen[p.WavelengthNm] = struct{}{}
		}
	}
	s.UniqueWavelengths = len(seen)
	return s
}
