package qrcode

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"leadgrid/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePNG("https://lg.example/l/AbC1234")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePNG_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GeneratePNG("https://lg.example/l/AbC1234")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GeneratePNG_InvalidContent(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePNG("")
	assert.Error(t, err)

	_, err = service.GeneratePNG(strings.Repeat("a", maxContentLength+1))
	assert.Error(t, err)
}

func TestNewFromConfig_DefaultsWhenUnset(t *testing.T) {
	service := NewFromConfig(&config.Config{})

	qrBytes, err := service.GeneratePNG("https://lg.example/l/AbC1234")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}
