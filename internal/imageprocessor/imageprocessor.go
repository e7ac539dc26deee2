package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Bounds is the maximum stored dimensions for an image class.
type Bounds struct {
	MaxWidth  int
	MaxHeight int
}

var (
	// BoundsProfilePhoto caps avatars shown in lists and profile pages.
	BoundsProfilePhoto = Bounds{MaxWidth: 800, MaxHeight: 800}
	// BoundsDocument caps NID scans; admins still need the text legible.
	BoundsDocument = Bounds{MaxWidth: 1600, MaxHeight: 1600}
)

// Processor downscales uploaded images before they hit storage.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Fit decodes the image, scales it down to fit the bounds when it is too
// large, and re-encodes it in its original format. Images already inside
// the bounds are re-encoded unchanged. Only jpeg and png are handled.
func (p *Processor) Fit(r io.Reader, b Bounds) ([]byte, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = p.scaleDown(img, b)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode jpeg: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	return buf.Bytes(), nil
}

// scaleDown shrinks img to fit the bounds, keeping aspect ratio. It never
// upscales.
func (p *Processor) scaleDown(img image.Image, b Bounds) image.Image {
	srcBounds := img.Bounds()
	width := srcBounds.Dx()
	height := srcBounds.Dy()

	if width <= b.MaxWidth && height <= b.MaxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := b.MaxWidth
	newHeight := b.MaxHeight
	if float64(b.MaxWidth)/float64(b.MaxHeight) > ratio {
		newWidth = int(float64(b.MaxHeight) * ratio)
	} else {
		newHeight = int(float64(b.MaxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, srcBounds, draw.Over, nil)
	return dst
}

// Dimensions returns the pixel dimensions of an encoded image.
func Dimensions(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
