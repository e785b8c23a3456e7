// Package theme holds the glass tint presets of the co-branded design systems.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/lumen/pkg/shadow"
)

// Brand names.
const (
	Fing     = "fing"
	Sentinel = "sentinel"
)

// Brand is the hue and saturation a design system tints its glass with.
type Brand struct {
	Name       string
	Label      string
	Hue        float64
	Saturation float64
}

var brands = map[string]Brand{
	Fing:     {Name: Fing, Label: "FING", Hue: shadow.DefaultGlassHue, Saturation: shadow.DefaultGlassSaturation},
	Sentinel: {Name: Sentinel, Label: "SENTINEL", Hue: 215, Saturation: 40},
}

// Default returns the FING preset.
func Default() Brand {
	return brands[Fing]
}

// Lookup finds a preset by case-insensitive name.
func Lookup(name string) (Brand, error) {
	b, ok := brands[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Brand{}, fmt.Errorf("unknown brand %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(brands))
	for name := range brands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithTint returns b with any positive hue or saturation override applied.
func (b Brand) WithTint(hue, saturation float64) Brand {
	if hue > 0 {
		b.Hue = hue
	}
	if saturation > 0 {
		b.Saturation = saturation
	}
	return b
}
