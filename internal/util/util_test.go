package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.Equal(t, Checksum([]byte(`{"a":1}`)), Checksum([]byte(`{"a":1}`)))
	assert.NotEqual(t, Checksum([]byte(`{"a":1}`)), Checksum([]byte(`{"a":2}`)))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "zero", size: 0, expected: "0 B"},
		{name: "under a kilobyte", size: 512, expected: "512 B"},
		{name: "fractional kilobyte", size: 1536, expected: "1.5 KB"},
		{name: "megabyte", size: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.size))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds", duration: 45 * time.Second, expected: "45s"},
		{name: "rounds up to a minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
