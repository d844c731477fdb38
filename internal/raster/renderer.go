package raster

import (
	"image"
	"image/color"

	"geomlab/internal/mathutil"
	"geomlab/internal/postprocess"
)

// Triangle is a screen-space triangle. A zero Normal means unlit.
type Triangle struct {
	V      [3]Vertex
	Color  color.NRGBA
	Normal mathutil.Vec3
}

// Marker is a cross drawn over the finished scene.
type Marker struct {
	X, Y  float64
	Color color.NRGBA
}

// Scene lists what to draw, in output-pixel coordinates.
type Scene struct {
	Triangles []Triangle
	Markers   []Marker
}

// Options controls the output image.
type Options struct {
	Width, Height int
	Supersample   int
	Background    color.NRGBA
	Backdrop      image.Image // stretched over the frame when non-nil
	Light         *Light      // nil uses DefaultLight
}

// MaxSupersample bounds Options.Supersample; larger factors are clamped.
const MaxSupersample = 8

// Background and marker colors used by the previews.
var (
	DefaultBackground = color.NRGBA{24, 26, 32, 255}
	MarkerColor       = color.NRGBA{255, 64, 64, 255}
	BaseColor         = color.NRGBA{160, 160, 170, 255}
)

// Render draws scene at Supersample× resolution and downsamples to
// Width×Height.
func Render(scene Scene, opts Options) *image.NRGBA {
	ss := min(max(opts.Supersample, 1), MaxSupersample)
	w, h := opts.Width*ss, opts.Height*ss
	k := float64(ss)

	fb := NewFrameBuffer(w, h)
	fb.Fill(opts.Background)
	if opts.Backdrop != nil {
		fb.SetBackdrop(opts.Backdrop)
	}

	light := opts.Light
	if light == nil {
		light = DefaultLight()
	}
	for _, tri := range scene.Triangles {
		c := tri.Color
		if tri.Normal != (mathutil.Vec3{}) {
			if n, err := tri.Normal.Normalize(); err == nil {
				c = light.Lit(c, light.Shade(n))
			}
		}
		var vs [3]Vertex
		for i, v := range tri.V {
			vs[i] = Vertex{X: v.X * k, Y: v.Y * k, Z: v.Z}
		}
		FillTriangle(fb, vs[0], vs[1], vs[2], c)
	}

	for _, m := range scene.Markers {
		DrawCross(fb, m.X*k, m.Y*k, 6*ss, ss, m.Color)
	}

	img := fb.ToImage()
	if ss == 1 {
		return img
	}
	return postprocess.Downsample(img, opts.Width, opts.Height)
}
