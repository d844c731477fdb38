package preview

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"geomlab/internal/camera"
	"geomlab/internal/geomerr"
	"geomlab/internal/imageio"
	"geomlab/internal/mathutil"
	"geomlab/internal/raster"
)

var (
	origin = mathutil.Vec3{}
	up     = mathutil.Vec3{0, 1, 0}
	params = camera.ParamsDeg(60, 800.0/600.0, 1, 100, 800, 600)
)

func TestTriangleScene(t *testing.T) {
	a, b, c := mathutil.Vec3{-1, -5, -3}, mathutil.Vec3{7, 0, -1}, mathutil.Vec3{-6, 9, 0}
	eye := mathutil.Vec3{0, 0, 25}
	s, err := Triangle(a, b, c, eye, origin, up, params, camera.EngineFixed)
	if err != nil {
		t.Fatalf("Triangle: %v", err)
	}
	if len(s.Triangles) != 1 || len(s.Markers) != 3 {
		t.Fatalf("scene: %d triangles, %d markers", len(s.Triangles), len(s.Markers))
	}
	want, err := camera.ProjectAt(b, eye, origin, up, params)
	if err != nil {
		t.Fatal(err)
	}
	if v := s.Triangles[0].V[1]; v.X != want.X || v.Y != want.Y || v.Z <= 0 {
		t.Fatalf("vertex 1\nhave %+v\nwant %v with positive depth", v, want)
	}
	if s.Triangles[0].Normal != (mathutil.Vec3{-13, -34, 137}) {
		t.Fatalf("normal %v", s.Triangles[0].Normal)
	}
}

func TestTriangleBehindCamera(t *testing.T) {
	eye := mathutil.Vec3{0, 0, 5}
	_, err := Triangle(mathutil.Vec3{0, 0, 10}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, eye, origin, up, params, camera.EngineFixed)
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("have %v\nwant ErrInvalidInput", err)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	back := filepath.Join(dir, "back.png")
	bg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(bg.Pix); i += 4 {
		copy(bg.Pix[i:], []uint8{200, 220, 240, 255})
	}
	if err := imageio.Save(back, bg); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "point.png")
	scene := Point(camera.Pixel{X: 40, Y: 30})
	if err := Write(out, scene, Options{Width: 80, Height: 60, Supersample: 2, Backdrop: back}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	img, err := imageio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 60 {
		t.Fatalf("size %v", img.Bounds())
	}
	if c := img.NRGBAAt(2, 2); c.B < 230 {
		t.Fatalf("backdrop missing: %v", c)
	}
	if c := img.NRGBAAt(40, 30); c.R < 200 || c.G > 150 {
		t.Fatalf("marker missing: %v", c)
	}

	if err := Write(filepath.Join(dir, "x.png"), scene, Options{Width: 0, Height: 10}); !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("zero width\nhave %v", err)
	}
	if err := Write(filepath.Join(dir, "x.png"), scene, Options{Width: 10, Height: 10, Backdrop: filepath.Join(dir, "none.png")}); err == nil {
		t.Fatal("expected backdrop load error")
	}
}

func TestWriteSupersampleLimit(t *testing.T) {
	dir := t.TempDir()
	scene := Point(camera.Pixel{X: 5, Y: 5})
	path := filepath.Join(dir, "big.png")
	err := Write(path, scene, Options{Width: 10, Height: 10, Supersample: 1000})
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("have %v\nwant ErrInvalidInput", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no image should be written, stat: %v", err)
	}
	if err := Write(path, scene, Options{Width: 10, Height: 10, Supersample: raster.MaxSupersample}); err != nil {
		t.Fatalf("Write at the limit: %v", err)
	}
}

func TestWriteKeyLight(t *testing.T) {
	dir := t.TempDir()
	a, b, c := mathutil.Vec3{-1, -5, -3}, mathutil.Vec3{7, 0, -1}, mathutil.Vec3{-6, 9, 0}
	scene, err := Triangle(a, b, c, mathutil.Vec3{0, 0, 25}, origin, up, params, camera.EngineFixed)
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Width: 800, Height: 600, Supersample: 1, KeyLight: mathutil.Vec3{0, 0, 1}}
	if err := Write(filepath.Join(dir, "lit.png"), scene, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// A key light along the view direction leaves no highlight half-vector.
	opts.KeyLight = raster.DefaultViewDir
	if err := Write(filepath.Join(dir, "flat.png"), scene, opts); !errors.Is(err, geomerr.ErrDegenerate) {
		t.Fatalf("have %v\nwant ErrDegenerate", err)
	}
}
