package smoother

import (
	"encoding/hex"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxColors is the number of entries in a full palette.
const MaxColors = 256

// A Color is an 8-bit RGBA palette entry.
type Color struct {
	R, G, B, A uint8
}

// ParseColor decodes "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (Color, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || (len(raw) != 3 && len(raw) != 4) {
		return Color{}, errors.Errorf("parse color: invalid value %q", s)
	}
	c := Color{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// String formats the color as "#RRGGBBAA".
func (c Color) String() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

// UnmarshalYAML decodes a color from a hex string.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as a hex string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// A Palette is an ordered list of colors.
//
// Palette indices are 1-based, matching the color
// index stored in each voxel.
type Palette []Color

// At gets the color for a 1-based palette index.
func (p Palette) At(index int) (Color, bool) {
	if index < 1 || index > len(p) {
		return Color{}, false
	}
	return p[index-1], true
}

// DefaultPalette creates a full palette for documents
// which do not carry their own.
//
// The entries cycle through a coarse RGB cube so that
// neighboring indices are easy to tell apart.
func DefaultPalette() Palette {
	levels := []uint8{0x33, 0x66, 0x99, 0xcc, 0xff, 0x00}
	res := make(Palette, MaxColors)
	for i := range res {
		res[i] = Color{
			R: levels[i%6],
			G: levels[(i/6)%6],
			B: levels[(i/36)%6],
			A: 0xff,
		}
	}
	return res
}

// ReadPalettePNG reads a palette strip, one pixel per
// entry, from the first row of a PNG image.
func ReadPalettePNG(r io.Reader) (Palette, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "read palette")
	}
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, errors.New("read palette: empty image")
	}
	n := bounds.Dx()
	if n > MaxColors {
		n = MaxColors
	}
	res := make(Palette, n)
	for i := range res {
		res[i] = colorAt(img, bounds.Min.X+i, bounds.Min.Y)
	}
	return res, nil
}

func colorAt(img image.Image, x, y int) Color {
	r, g, b, a := img.At(x, y).RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
