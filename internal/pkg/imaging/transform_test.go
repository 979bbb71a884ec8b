package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTransform_Widths(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		wantW, wantH   int
	}{
		{"mais larga reduz mantendo proporção", 3840, 2160, 1920, 1080},
		{"exatamente no limite não muda", 1920, 1000, 1920, 1000},
		{"mais estreita não amplia", 800, 600, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Transform(pngOf(t, tt.width, tt.height))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, res.Width)
			assert.Equal(t, tt.wantH, res.Height)

			_, format, err := image.DecodeConfig(bytes.NewReader(res.Data))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
		})
	}
}

func TestTransform_NotAnImage(t *testing.T) {
	_, err := Transform([]byte("definitely not an image"))
	assert.Error(t, err)
}
