package world

import (
	"fmt"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Palette is an ordered list of run colors as rgb triples in [0, 1].
// Every fresh start draws one color from it; the run keeps that color
// until it ends.
type Palette []math32.Vector3

// defaultPaletteHex is the built-in palette used when the host does not
// configure one.
var defaultPaletteHex = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// DefaultPalette returns the built-in eight-color palette
func DefaultPalette() Palette {
	p, err := ParsePalette(defaultPaletteHex)
	if err != nil {
		panic("world: built-in palette failed to parse: " + err.Error())
	}
	return p
}

// ParsePalette converts hex color strings such as "#4A90D9" into a palette
func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette needs at least one color")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colors.FromHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", h, err)
		}
		p = append(p, math32.Vec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255))
	}
	return p, nil
}

// Random draws one palette color uniformly
func (p Palette) Random(rng randx.Rand) math32.Vector3 {
	return p[rng.Intn(len(p))]
}
