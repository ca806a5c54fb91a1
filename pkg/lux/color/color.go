// Package color derives presentation colors for LUXBIN symbols.
//
// Hue is a pure function of the symbol's alphabet index and is the only
// identity-bearing component; categories perturb saturation/lightness and
// never hue. Wavelengths are derived from hue for display and are never an
// input to decoding.
package color

import (
	"fmt"
	"math"
)

// Descriptor is an HSL color triple.
// Hue in [0,360), Saturation and Lightness in [0,100].
type Descriptor struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// Category tags a symbol with a semantic role. Categories only adjust
// saturation/lightness; the default (CategoryRawBinary) matches the plain
// index-derived color.
type Category uint8

const (
	CategoryRawBinary Category = iota
	CategoryNoun
	CategoryVerb
	CategoryAdjective
	CategoryAdverb
	CategoryPronoun
	CategoryPreposition
	CategoryConjunction
	CategoryInterjection
	CategoryPunctuation

	categoryCount = 10
)

var categoryNames = [categoryCount]string{
	"raw-binary", "noun", "verb", "adjective", "adverb",
	"pronoun", "preposition", "conjunction", "interjection", "punctuation",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category_%d", uint8(c))
}

// ParseCategory maps a name back to a Category.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return CategoryRawBinary, fmt.Errorf("❌ unknown category: %s", name)
}

// Default saturation/lightness applied when no category adjustment is wanted.
const (
	DefaultSaturation = 100
	DefaultLightness  = 70
)

// slPair holds a category's saturation/lightness override.
type slPair struct {
	S float64
	L float64
}

// categoryTable is the fixed per-category saturation/lightness table.
// Raw binary keeps the defaults so untagged and raw-tagged events are
// identical.
var categoryTable = [categoryCount]slPair{
	CategoryRawBinary:    {DefaultSaturation, DefaultLightness},
	CategoryNoun:         {95, 55},
	CategoryVerb:         {90, 45},
	CategoryAdjective:    {80, 65},
	CategoryAdverb:       {75, 60},
	CategoryPronoun:      {70, 75},
	CategoryPreposition:  {60, 70},
	CategoryConjunction:  {55, 80},
	CategoryInterjection: {100, 50},
	CategoryPunctuation:  {40, 85},
}

// ForIndex returns the default descriptor for a symbol index in an alphabet
// of the given size. Hue is spread evenly over the full circle.
func ForIndex(index, size int) Descriptor {
	step := 360.0 / float64(size)
	return Descriptor{
		Hue:        math.Mod(float64(index)*step, 360),
		Saturation: DefaultSaturation,
		Lightness:  DefaultLightness,
	}
}

// ForCategory returns the descriptor for a symbol index with a category's
// saturation/lightness applied. Hue is identical to ForIndex for the same
// index and size.
func ForCategory(index, size int, cat Category) Descriptor {
	d := ForIndex(index, size)
	if int(cat) < len(categoryTable) {
		d.Saturation = categoryTable[cat].S
		d.Lightness = categoryTable[cat].L
	}
	return d
}

// Wavelength maps hue to a display wavelength in nanometers.
// The mapping is linear and strictly monotonic over [0,360) onto [400,700),
// the inverse of the original visualizer's hue = (wl-400)/300*360.
func Wavelength(d Descriptor) float64 {
	return 400 + (d.Hue/360)*300
}

// RGB converts the descriptor to 8-bit RGB channels (standard HSL->RGB).
func RGB(d Descriptor) (r, g, b uint8) {
	h := math.Mod(d.Hue, 360) / 360
	s := d.Saturation / 100
	l := d.Lightness / 100

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	conv := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var c float64
		switch {
		case t < 1.0/6:
			c = p + (q-p)*6*t
		case t < 1.0/2:
			c = q
		case t < 2.0/3:
			c = p + (q-p)*(2.0/3-t)*6
		default:
			c = p
		}
		return uint8(math.Round(c * 255))
	}

	return conv(h + 1.0/3), conv(h), conv(h - 1.0/3)
}

// Hex returns the descriptor as a #rrggbb string.
func Hex(d Descriptor) string {
	r, g, b := RGB(d)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
