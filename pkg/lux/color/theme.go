package color

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme overrides per-category saturation/lightness. Hue is never themeable;
// it carries symbol identity.
type Theme struct {
	Categories map[string]ThemeEntry `yaml:"categories"`
}

// ThemeEntry is one category's saturation/lightness override.
type ThemeEntry struct {
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// LoadTheme reads a YAML theme file and validates its entries.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses and validates YAML theme data.
func ParseTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	for name, e := range t.Categories {
		if _, err := ParseCategory(name); err != nil {
			return nil, err
		}
		if e.Saturation < 0 || e.Saturation > 100 {
			return nil, fmt.Errorf("❌ theme %s: saturation %.1f out of [0,100]", name, e.Saturation)
		}
		if e.Lightness < 0 || e.Lightness > 100 {
			return nil, fmt.Errorf("❌ theme %s: lightness %.1f out of [0,100]", name, e.Lightness)
		}
	}
	return &t, nil
}

// Apply returns the descriptor for index/size/cat with the theme's override
// when one exists, falling back to the built-in category table.
func (t *Theme) Apply(index, size int, cat Category) Descriptor {
	d := ForCategory(index, size, cat)
	if t == nil {
		return d
	}
	if e, ok := t.Categories[cat.String()]; ok {
		d.Saturation = e.Saturation
		d.Lightness = e.Lightness
	}
	return d
}
