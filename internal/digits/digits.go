// Package digits builds the geometry of a four-bit binary clock drawn
// directly in normalized device coordinates: a "0" is an elliptical ring,
// a "1" is a bar with a flag.
package digits

import (
	"image/color"
	"math"

	"geomlab/internal/geomerr"
)

// Layout constants.
const (
	Bits       = 4
	Shrink     = 0.4
	Segments   = 16
	InnerR     = 0.4
	OuterR     = 0.6
	RingScaleX = 0.9
	RingScaleY = 1.3
)

// Offsets are the x positions of bit 0 through bit 3 before shrinking.
var Offsets = [Bits]float64{1.85, 1.85 / 3, -1.85 / 3, -1.85}

// Digit colors and the clear color.
var (
	ZeroColor  = color.NRGBA{255, 0, 0, 255}
	OneColor   = color.NRGBA{0, 0, 255, 255}
	Background = color.NRGBA{255, 255, 255, 255}
)

// Digit is one glyph as an indexed triangle list in NDC.
type Digit struct {
	Bit      int
	Vertices [][2]float64
	Indices  []int // three per triangle
}

// Triangles returns the vertex triples of d.
func (d Digit) Triangles() [][3][2]float64 {
	out := make([][3][2]float64, 0, len(d.Indices)/3)
	for i := 0; i+2 < len(d.Indices); i += 3 {
		out = append(out, [3][2]float64{
			d.Vertices[d.Indices[i]],
			d.Vertices[d.Indices[i+1]],
			d.Vertices[d.Indices[i+2]],
		})
	}
	return out
}

// Color is the fill color of d.
func (d Digit) Color() color.NRGBA {
	if d.Bit == 1 {
		return OneColor
	}
	return ZeroColor
}

// Build returns the glyph for bit centered at offsetX.
func Build(bit int, offsetX float64) (Digit, error) {
	switch bit {
	case 0:
		return ring(offsetX), nil
	case 1:
		return bar(offsetX), nil
	}
	return Digit{}, geomerr.Invalid("digits.build", "bit must be 0 or 1, got %d", bit)
}

func bar(dx float64) Digit {
	v := func(x, y float64) [2]float64 {
		return [2]float64{(x + dx) * Shrink, y * Shrink}
	}
	return Digit{
		Bit: 1,
		Vertices: [][2]float64{
			v(-0.15, 0.77),
			v(-0.15, -0.77),
			v(0.15, 0.77),
			v(0.15, -0.77),
			v(-0.4, 0.35), // flag
		},
		Indices: []int{0, 1, 2, 1, 3, 2, 0, 2, 4},
	}
}

// ring places Segments outer vertices followed by Segments inner ones and
// stitches neighbouring pairs into quads.
func ring(dx float64) Digit {
	d := Digit{
		Vertices: make([][2]float64, 2*Segments),
		Indices:  make([]int, 0, 6*Segments),
	}
	step := 2 * math.Pi / Segments
	for i := 0; i < Segments; i++ {
		cos, sin := math.Cos(float64(i)*step), math.Sin(float64(i)*step)
		d.Vertices[i] = [2]float64{
			(OuterR*cos*RingScaleX + dx) * Shrink,
			OuterR * sin * RingScaleY * Shrink,
		}
		d.Vertices[i+Segments] = [2]float64{
			(InnerR*cos*RingScaleX + dx) * Shrink,
			InnerR * sin * RingScaleY * Shrink,
		}
	}
	for i := 0; i < Segments; i++ {
		j := (i + 1) % Segments
		d.Indices = append(d.Indices,
			i, i+Segments, j,
			i+Segments, j+Segments, j,
		)
	}
	return d
}

// Value reduces seconds to the 4-bit counter shown by the clock.
func Value(seconds int) int {
	return ((seconds % 16) + 16) % 16
}

// Frame returns the four glyphs displaying Value(seconds), bit 0 first.
func Frame(seconds int) []Digit {
	v := Value(seconds)
	out := make([]Digit, Bits)
	for i := 0; i < Bits; i++ {
		// bit is always 0 or 1
		out[i], _ = Build((v>>i)&1, Offsets[i])
	}
	return out
}
