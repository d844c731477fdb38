package digits

import (
	"geomlab/internal/camera"
	"geomlab/internal/mathutil"
	"geomlab/internal/raster"
)

// Scene maps a frame from NDC to a width×height pixel grid.
func Scene(frame []Digit, width, height float64) raster.Scene {
	var s raster.Scene
	for _, d := range frame {
		for _, tri := range d.Triangles() {
			var t raster.Triangle
			for i, v := range tri {
				p := camera.NDCToPixel(mathutil.Vec3{v[0], v[1], 0}, width, height)
				t.V[i] = raster.Vertex{X: p.X, Y: p.Y}
			}
			t.Color = d.Color()
			s.Triangles = append(s.Triangles, t)
		}
	}
	return s
}

// String renders the displayed value in binary, most significant bit first.
func String(frame []Digit) string {
	b := make([]byte, len(frame))
	for i, d := range frame {
		b[len(frame)-1-i] = byte('0' + d.Bit)
	}
	return string(b)
}
