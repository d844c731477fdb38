package imageio

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 60), uint8(y * 100), 200, 255})
		}
	}
	return img
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.png")
	src := testImage()
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samePixels(t, got, src)
}

func samePixels(t *testing.T, got, want *image.NRGBA) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds\nhave %v\nwant %v", got.Bounds(), want.Bounds())
	}
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("pixel byte %d\nhave %d\nwant %d", i, got.Pix[i], want.Pix[i])
		}
	}
}

func writeWith(t *testing.T, path string, encode func(f *os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := encode(f); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

// Files written by other tools, not by Save, must still decode.
func TestLoadStdlibPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 3)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}
	writeWith(t, path, func(f *os.File) error { return png.Encode(f, src) })

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samePixels(t, got, src)
}

func TestLoadJPEG(t *testing.T) {
	dir := t.TempDir()
	want := color.NRGBA{40, 120, 200, 255}
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, want)
		}
	}
	for _, name := range []string{"a.jpg", "b.JPEG"} {
		path := filepath.Join(dir, name)
		writeWith(t, path, func(f *os.File) error { return jpeg.Encode(f, src, &jpeg.Options{Quality: 100}) })

		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if got.Bounds() != src.Bounds() {
			t.Fatalf("%s bounds %v", name, got.Bounds())
		}
		c := got.NRGBAAt(8, 8)
		near := func(a, b uint8) bool { return a-b <= 4 || b-a <= 4 }
		if !near(c.R, want.R) || !near(c.G, want.G) || !near(c.B, want.B) || c.A != 255 {
			t.Fatalf("%s center\nhave %v\nwant about %v", name, c, want)
		}
	}
}

func TestSaveLoadTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tga")
	src := testImage()
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samePixels(t, got, src)
}

func TestSaveLoadWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	src := testImage()
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samePixels(t, got, src)
}

func TestSaveWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := nativewebp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Fatalf("webp size\nhave %dx%d\nwant 4x3", cfg.Width, cfg.Height)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "out.bmp"), testImage()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(junk); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	if err := Save(path, testImage()); err != nil {
		t.Fatal(err)
	}
	c := NewCache()
	first, err := c.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Load(filepath.Join(dir, ".", "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("expected the cached image to be reused")
	}

	missing := filepath.Join(dir, "missing.png")
	if _, err := c.Load(missing); err == nil {
		t.Fatal("expected error for missing file")
	}
	// The failure is cached too, so a later file does not change the result.
	if err := Save(missing, testImage()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load(missing); err == nil {
		t.Fatal("expected cached error")
	}
	if c.Len() != 2 {
		t.Fatalf("cache entries: %d", c.Len())
	}
}
