package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Save encodes img by file extension (.webp, .png or .tga), creating parent directories.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" && ext != ".tga" {
		return fmt.Errorf("imageio: unsupported output format %q (want .webp, .png or .tga)", ext)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	case ".tga":
		err = tga.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return f.Close()
}
