package debug

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raypick/internal/engine/picking"
)

func TestWireframeFromAABB(t *testing.T) {
	box := picking.NewAABB(-1, -2, -3, 1, 2, 3)
	v := WireframeFromAABB(box, 0.5)
	require.Len(t, v, BBoxWireframeVertexCount*3)

	// First vertex is the padded min corner
	assert.Equal(t, []float32{-1.5, -2.5, -3.5}, v[:3])
	// Second vertex runs along +X
	assert.Equal(t, []float32{1.5, -2.5, -3.5}, v[3:6])

	assert.Nil(t, WireframeFromAABB(picking.EmptyAABB(), 1))
}

func TestFlipRGBA(t *testing.T) {
	// 1x2 image: bottom row red, top row blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), img.Pix[2], "top row comes first")
	assert.Equal(t, uint8(255), img.Pix[4], "bottom row last")

	_, err = FlipRGBA(pixels, 2, 2)
	assert.Error(t, err)
}

func TestCaptureFormats(t *testing.T) {
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 8_000_000, time.UTC)
	pixels := make([]byte, 4*3*4)

	for _, format := range []string{FormatPNG, FormatBMP} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "shots")
			sc := NewScreenshotCapture(dir, "raypick", format)
			sc.now = func() time.Time { return fixed }

			path, err := sc.CaptureFromPixels(pixels, 4, 3)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "raypick_2026-03-04_05-06-07.008."+format), path)

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()
			cfg, gotFormat, err := image.DecodeConfig(f)
			require.NoError(t, err)
			assert.Equal(t, format, gotFormat)
			assert.Equal(t, 4, cfg.Width)
			assert.Equal(t, 3, cfg.Height)
		})
	}
}

func TestUnknownFormatFallsBackToPNG(t *testing.T) {
	sc := NewScreenshotCapture("", "x", "gif")
	assert.Equal(t, FormatPNG, sc.format)
}
