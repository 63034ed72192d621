package vision

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"sort"
	"strings"

	"github.com/nfnt/resize"
)

const (
	// Images are downsampled to a fixed grid before bucketing; 2500 samples
	// are plenty to find dominant colors
	sampleGridSize = 50
	maxColors      = 3
)

// Pixel classification thresholds (0-255 channel scale)
const (
	blackLightnessMax = 40
	whiteLightnessMin = 220
	grayChromaMax     = 30
	darkGrayBoundary  = 128
)

// ExtractColors reduces raw image bytes to the dominant color names, most
// frequent first, at most three. Ties keep first-encountered bucket order.
// Any processing failure yields ["unknown"]; this function never fails.
func ExtractColors(imageData []byte) []string {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return []string{"unknown"}
	}
	return dominantColors(img)
}

// dominantColors samples the image on a fixed grid and counts color buckets
func dominantColors(img image.Image) []string {
	sampled := resize.Resize(sampleGridSize, sampleGridSize, img, resize.NearestNeighbor)

	counts := make(map[string]int)
	var order []string

	bounds := sampled.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := sampled.At(x, y).RGBA()
			bucket := classifyPixel(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			if counts[bucket] == 0 {
				order = append(order, bucket)
			}
			counts[bucket]++
		}
	}

	if len(order) == 0 {
		return []string{"unknown"}
	}

	// Stable sort on the first-encounter list so ties keep encounter order
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxColors {
		order = order[:maxColors]
	}
	return order
}

// classifyPixel buckets one pixel by lightness, chroma and channel dominance
func classifyPixel(r, g, b uint8) string {
	ri, gi, bi := int(r), int(g), int(b)

	max := ri
	if gi > max {
		max = gi
	}
	if bi > max {
		max = bi
	}
	min := ri
	if gi < min {
		min = gi
	}
	if bi < min {
		min = bi
	}

	lightness := (max + min) / 2
	chroma := max - min

	switch {
	case lightness < blackLightnessMax:
		return "black"
	case lightness > whiteLightnessMin:
		return "white"
	case chroma < grayChromaMax:
		if lightness < darkGrayBoundary {
			return "dark gray"
		}
		return "gray"
	}

	switch {
	case ri >= gi && ri >= bi:
		// Red-dominant family
		switch {
		case gi > 180 && bi < 100:
			return "yellow"
		case gi > 80 && bi < 80:
			return "orange"
		case bi > 120:
			return "purple"
		case lightness < 100:
			return "brown"
		default:
			return "red"
		}
	case gi >= ri && gi >= bi:
		if bi > 150 {
			return "cyan"
		}
		return "green"
	default:
		switch {
		case gi > 150:
			return "cyan"
		case ri > 120:
			return "purple"
		default:
			return "blue"
		}
	}
}

// DecodeImagePayload accepts the wire forms the frontend sends: a base64
// data URI ("data:image/jpeg;base64,...."), bare base64, or raw bytes.
// Undecodable payloads pass through as-is; image.Decode rejects them later.
func DecodeImagePayload(payload string) []byte {
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	if decoded, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return decoded
	}
	return []byte(payload)
}
