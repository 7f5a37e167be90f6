// SPDX-License-Identifier: MIT

package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoder registration for imageutil.Open
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/up-zero/gotool/imageutil"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// ErrUnsupportedFormat is returned for unknown file extensions.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// Format is an output encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks a Format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load reads an image file of any registered format as a grid.
func Load(path string) (*gridgraph.Image, error) {
	img, err := imageutil.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	return FromImage(img)
}

// FromImage converts any image to a grid, going through luma when needed.
func FromImage(img image.Image) (*gridgraph.Image, error) {
	return gridgraph.FromGray(ToGray(img))
}

// ToGray returns img as *image.Gray, converting colour models if needed.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}

// Save writes im to path, encoded according to its extension. PNG and
// JPEG (quality 95) go through imageutil; BMP and TIFF through x/image.
func Save(path string, im *gridgraph.Image) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	switch f {
	case PNG, JPEG:
		if err := imageutil.Save(path, im.Gray(), jpegQuality); err != nil {
			return fmt.Errorf("imageio: save %s: %w", path, err)
		}
		return nil
	}
	return saveWith(path, f, im)
}

const jpegQuality = 95

func saveWith(path string, f Format, im *gridgraph.Image) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("imageio: close %s: %w", path, cerr)
		}
	}()
	return encode(out, f, im)
}

// encode writes im to w for the formats x/image can encode.
func encode(w io.Writer, f Format, im *gridgraph.Image) error {
	g := im.Gray()
	var err error
	switch f {
	case BMP:
		err = bmp.Encode(w, g)
	case TIFF:
		err = tiff.Encode(w, g, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}
