package raster

import (
	"image/color"
	"math"
)

// Vertex is a screen-space position in pixels plus a depth (smaller is nearer).
type Vertex struct {
	X, Y, Z float64
}

// FillTriangle rasterizes a flat-colored triangle with a z-buffer test.
// Winding does not matter. Triangles with no area are skipped.
func FillTriangle(fb *FrameBuffer, v0, v1, v2 Vertex, c color.NRGBA) {
	x0, y0, z0 := v0.X, v0.Y, v0.Z
	x1, y1, z1 := v1.X, v1.Y, v1.Z
	x2, y2, z2 := v2.X, v2.Y, v2.Z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Sample at pixel centers.
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z >= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = c.R
			fb.Color[pxIdx+1] = c.G
			fb.Color[pxIdx+2] = c.B
			fb.Color[pxIdx+3] = c.A
		}
	}
}

// DrawCross marks (x, y) with a plus sign of the given half-length and
// thickness, drawn over everything.
func DrawCross(fb *FrameBuffer, x, y float64, half, thick int, c color.NRGBA) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	r := thick / 2
	for d := -half; d <= half; d++ {
		for t := -r; t <= thick-1-r; t++ {
			fb.Set(cx+d, cy+t, c)
			fb.Set(cx+t, cy+d, c)
		}
	}
}
