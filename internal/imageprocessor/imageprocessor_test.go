package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestFitDownscalesKeepingAspectRatio(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Fit(bytes.NewReader(encodePNG(t, 3200, 1600)), BoundsDocument)
	require.NoError(t, err)

	w, h, err := Dimensions(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 800, h)
}

func TestFitNeverUpscales(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Fit(bytes.NewReader(encodeJPEG(t, 300, 200)), BoundsProfilePhoto)
	require.NoError(t, err)

	w, h, err := Dimensions(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestFitCapsPortraitProfilePhotos(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Fit(bytes.NewReader(encodeJPEG(t, 1000, 2000)), BoundsProfilePhoto)
	require.NoError(t, err)

	w, h, err := Dimensions(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, w)
	assert.Equal(t, 800, h)
}

func TestFitRejectsNonImageBytes(t *testing.T) {
	p := NewProcessor(85)

	_, err := p.Fit(bytes.NewReader([]byte("definitely not pixels")), BoundsProfilePhoto)
	assert.Error(t, err)
}

func TestNewProcessorClampsQuality(t *testing.T) {
	assert.Equal(t, 85, NewProcessor(0).quality)
	assert.Equal(t, 85, NewProcessor(150).quality)
	assert.Equal(t, 70, NewProcessor(70).quality)
}
