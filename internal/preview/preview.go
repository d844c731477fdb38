// Package preview turns projection results into images.
package preview

import (
	"fmt"
	"image/color"

	"geomlab/internal/camera"
	"geomlab/internal/geomerr"
	"geomlab/internal/imageio"
	"geomlab/internal/mathutil"
	"geomlab/internal/raster"
	"geomlab/internal/triangle"
)

// Options controls how a scene is written.
type Options struct {
	Width, Height int
	Supersample   int
	Backdrop      string // optional image path stretched behind the scene
	Background    color.NRGBA
	Images        *imageio.Cache // optional; reuses decoded backdrops across writes
	KeyLight      mathutil.Vec3  // key light direction; zero uses raster.DefaultKeyDir
}

// Point marks a projected pixel.
func Point(px camera.Pixel) raster.Scene {
	return raster.Scene{Markers: []raster.Marker{{X: px.X, Y: px.Y, Color: raster.MarkerColor}}}
}

// Triangle projects a, b, c through the camera and shades the face from
// its normal. Every vertex must be in front of the camera.
func Triangle(a, b, c, eye, target, up mathutil.Vec3, params camera.Params, engine camera.Engine) (raster.Scene, error) {
	var tri raster.Triangle
	for i, p := range []mathutil.Vec3{a, b, c} {
		s, err := engine.Trace(p, eye, target, up, params)
		if err != nil {
			return raster.Scene{}, fmt.Errorf("preview: vertex %d: %w", i, err)
		}
		if !s.InFront() {
			return raster.Scene{}, geomerr.Invalid("preview.triangle", "vertex %d %v is behind the camera", i, p)
		}
		tri.V[i] = raster.Vertex{X: s.Pixel.X, Y: s.Pixel.Y, Z: s.Camera[2]}
	}
	tri.Color = raster.BaseColor
	tri.Normal = triangle.Normal(a, b, c)

	scene := raster.Scene{Triangles: []raster.Triangle{tri}}
	for _, v := range tri.V {
		scene.Markers = append(scene.Markers, raster.Marker{X: v.X, Y: v.Y, Color: raster.MarkerColor})
	}
	return scene, nil
}

// Write renders scene and saves it to path (.webp, .png or .tga).
func Write(path string, scene raster.Scene, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return geomerr.Invalid("preview.write", "image size %dx%d must be positive", opts.Width, opts.Height)
	}
	if opts.Supersample > raster.MaxSupersample {
		return geomerr.Invalid("preview.write", "supersample %d exceeds %d", opts.Supersample, raster.MaxSupersample)
	}
	ro := raster.Options{
		Width:       opts.Width,
		Height:      opts.Height,
		Supersample: opts.Supersample,
		Background:  opts.Background,
	}
	if ro.Background == (color.NRGBA{}) {
		ro.Background = raster.DefaultBackground
	}
	if opts.KeyLight != (mathutil.Vec3{}) {
		l, err := raster.NewLight(opts.KeyLight, raster.DefaultRimDir, raster.DefaultViewDir)
		if err != nil {
			return err
		}
		ro.Light = l
	}
	if opts.Backdrop != "" {
		load := imageio.Load
		if opts.Images != nil {
			load = opts.Images.Load
		}
		img, err := load(opts.Backdrop)
		if err != nil {
			return err
		}
		ro.Backdrop = img
	}
	return imageio.Save(path, raster.Render(scene, ro))
}
