package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrfgrid/gridgraph"
	"github.com/katalvlaran/mrfgrid/imageio"
)

func sample(t *testing.T) *gridgraph.Image {
	t.Helper()
	im, err := gridgraph.NewImage([][]int{
		{0, 64, 128},
		{255, 32, 10},
	})
	require.NoError(t, err)
	return im
}

func TestFormatOf(t *testing.T) {
	cases := map[string]imageio.Format{
		"a.png":  imageio.PNG,
		"b.JPG":  imageio.JPEG,
		"c.jpeg": imageio.JPEG,
		"d.bmp":  imageio.BMP,
		"e.tif":  imageio.TIFF,
		"f.tiff": imageio.TIFF,
	}
	for in, want := range cases {
		got, err := imageio.FormatOf(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := imageio.FormatOf("g.webp")
	require.ErrorIs(t, err, imageio.ErrUnsupportedFormat)
}

// TestLosslessFormats writes and reads back each lossless format.
func TestLosslessFormats(t *testing.T) {
	im := sample(t)
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, imageio.Save(path, im), name)

		got, err := imageio.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, im.Rows(), got.Rows(), name)
	}
}

// TestJPEGIsClose saves through the lossy path and checks the values
// survive within a few levels.
func TestJPEGIsClose(t *testing.T) {
	im, err := gridgraph.NewImage([][]int{{100, 100, 100, 100}, {100, 100, 100, 100}})
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out.jpeg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, imageio.Save(path, im), name)

		got, err := imageio.Load(path)
		require.NoError(t, err, name)
		require.Equal(t, im.Shape, got.Shape)
		for i := 0; i < got.Len(); i++ {
			assert.InDelta(t, 100, float64(got.Value(i)), 3, name)
		}
	}
}

// TestColourToGray: colour inputs collapse to luma, and a non-zero origin
// is normalised.
func TestColourToGray(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(5, 5, 7, 6))
	rgba.Set(5, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rgba.Set(6, 5, color.RGBA{A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, rgba))
	path := filepath.Join(t.TempDir(), "rgb.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	got, err := imageio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{255, 0}}, got.Rows())

	g := imageio.ToGray(rgba)
	assert.Equal(t, image.Rect(0, 0, 2, 1), g.Bounds())
	assert.Equal(t, uint8(255), g.GrayAt(0, 0).Y)
}

func TestErrors(t *testing.T) {
	_, err := imageio.Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o600))
	_, err = imageio.Load(junk)
	require.Error(t, err)

	err = imageio.Save(filepath.Join(t.TempDir(), "x.gif"), sample(t))
	require.ErrorIs(t, err, imageio.ErrUnsupportedFormat)

	err = imageio.Save(filepath.Join(t.TempDir(), "missing-dir", "x.bmp"), sample(t))
	require.Error(t, err)
}
