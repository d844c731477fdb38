// Package postprocess resamples rendered frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled frame to w×h. The CatmullRom kernel
// works on premultiplied color, so transparent texels do not bleed black
// into the edges of opaque shapes. img is returned as is when it already
// has the requested size.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}

	premul := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(premul, premul.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(premul.Bounds())
	draw.Draw(out, out.Bounds(), premul, image.Point{}, draw.Src)
	return out
}
