package raster

import (
	"image/color"
	"math"

	"geomlab/internal/geomerr"
	"geomlab/internal/mathutil"
)

// Default light directions, not normalized. The key light comes from the
// upper right, the rim light from behind, and the viewer looks down -z.
var (
	DefaultKeyDir  = mathutil.Vec3{180, 260, 140}
	DefaultRimDir  = mathutil.Vec3{-160, 130, -210}
	DefaultViewDir = mathutil.Vec3{0, -110, -400}
)

// Light shades flat faces with a key and a rim light, a sky/ground fill
// and a Blinn-Phong highlight. Faces are lit from both sides.
type Light struct {
	Key, Rim, View mathutil.Vec3 // unit length
	half           mathutil.Vec3

	Ambient   float64
	Fill      float64
	KeyGain   float64
	RimGain   float64
	Specular  float64
	Shininess float64
	Exposure  float64
}

// NewLight builds a light from three directions of any non-zero length,
// with the default gains.
func NewLight(key, rim, view mathutil.Vec3) (*Light, error) {
	dirs := [3]mathutil.Vec3{key, rim, view}
	for i, name := range []string{"key", "rim", "view"} {
		n, err := dirs[i].Normalize()
		if err != nil {
			return nil, geomerr.Degenerate("raster.light", "%s direction %v has no length", name, dirs[i])
		}
		dirs[i] = n
	}
	half, err := dirs[0].Sub(dirs[2]).Normalize()
	if err != nil {
		return nil, geomerr.Degenerate("raster.light", "key light %v points along the view direction", key)
	}
	return &Light{
		Key:       dirs[0],
		Rim:       dirs[1],
		View:      dirs[2],
		half:      half,
		Ambient:   0.55,
		Fill:      0.50,
		KeyGain:   1.50,
		RimGain:   0.60,
		Specular:  0.45,
		Shininess: 12,
		Exposure:  1.05,
	}, nil
}

// DefaultLight returns a light built from the default directions.
func DefaultLight() *Light {
	l, err := NewLight(DefaultKeyDir, DefaultRimDir, DefaultViewDir)
	if err != nil {
		panic(err)
	}
	return l
}

// Shade returns the light intensity reaching a face with unit normal n.
func (l *Light) Shade(n mathutil.Vec3) float64 {
	sky := (1-math.Abs(n[1]))*0.5 + 0.5
	hl := math.Max(n.Dot(l.half), 0)
	return l.Ambient +
		l.Fill*sky +
		l.KeyGain*math.Abs(n.Dot(l.Key)) +
		l.RimGain*math.Abs(n.Dot(l.Rim)) +
		l.Specular*math.Pow(hl, l.Shininess)
}

// Lit scales base by shade in linear light and maps the result back to
// sRGB through the ACES curve. Alpha is unchanged.
func (l *Light) Lit(base color.NRGBA, shade float64) color.NRGBA {
	gain := shade * l.Exposure
	ch := func(v uint8) uint8 {
		x := ACESTonemap(linear[v] * gain)
		return to8(math.Pow(x, 1/gamma) * 255)
	}
	return color.NRGBA{R: ch(base.R), G: ch(base.G), B: ch(base.B), A: base.A}
}

const gamma = 2.2

// linear maps an 8-bit sRGB channel to linear light.
var linear = func() (t [256]float64) {
	for i := range t {
		t[i] = math.Pow(float64(i)/255, gamma)
	}
	return t
}()

// ACESTonemap is the filmic curve of Narkowicz's ACES fit.
func ACESTonemap(x float64) float64 {
	return x * (2.51*x + 0.03) / (x*(2.43*x+0.59) + 0.14)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 255)))
}
