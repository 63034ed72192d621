package vision

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidImage encodes a uniformly colored PNG for tests
func solidImage(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExtractColors_PureRed(t *testing.T) {
	colors := ExtractColors(solidImage(t, color.RGBA{R: 255, A: 255}))

	require.NotEmpty(t, colors)
	assert.Equal(t, "red", colors[0])
	assert.LessOrEqual(t, len(colors), 3)
}

func TestExtractColors_InvalidDataFallsBack(t *testing.T) {
	colors := ExtractColors([]byte("definitely not an image"))
	assert.Equal(t, []string{"unknown"}, colors)
}

func TestExtractColors_EmptyDataFallsBack(t *testing.T) {
	colors := ExtractColors(nil)
	assert.Equal(t, []string{"unknown"}, colors)
}

func TestClassifyPixel(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    string
	}{
		{"near black", 10, 10, 10, "black"},
		{"near white", 250, 250, 250, "white"},
		{"light gray", 180, 180, 175, "gray"},
		{"dark gray", 90, 90, 85, "dark gray"},
		{"pure red", 255, 0, 0, "red"},
		{"pure green", 0, 200, 0, "green"},
		{"pure blue", 0, 0, 200, "blue"},
		{"yellow", 250, 220, 40, "yellow"},
		{"orange", 250, 150, 40, "orange"},
		{"brown", 120, 70, 30, "brown"},
		{"purple", 160, 40, 180, "purple"},
		{"cyan", 40, 200, 210, "cyan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyPixel(tt.r, tt.g, tt.b))
		})
	}
}

func TestDecodeImagePayload(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("data URI", func(t *testing.T) {
		assert.Equal(t, raw, DecodeImagePayload("data:image/png;base64,"+encoded))
	})

	t.Run("bare base64", func(t *testing.T) {
		assert.Equal(t, raw, DecodeImagePayload(encoded))
	})

	t.Run("non-base64 passes through", func(t *testing.T) {
		assert.Equal(t, []byte("!!not base64!!"), DecodeImagePayload("!!not base64!!"))
	})
}
