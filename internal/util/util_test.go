package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "zero bytes", size: 0, expected: "0 B"},
		{name: "bytes under kilobyte", size: 512, expected: "512 B"},
		{name: "exact kilobyte", size: 1024, expected: "1.0 KB"},
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

func TestFormatExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)

		return &ts
	}

	tests := []struct {
		name      string
		expiresAt *time.Time
		expected  string
	}{
		{name: "no expiry", expiresAt: nil, expected: "never"},
		{name: "seconds left", expiresAt: at(45 * time.Second), expected: "in 45s"},
		{name: "minutes left", expiresAt: at(2*time.Minute + 30*time.Second), expected: "in 2m30s"},
		{name: "hours left", expiresAt: at(time.Hour + 30*time.Minute), expected: "in 1h30m"},
		{name: "expiry equals now", expiresAt: at(0), expected: "expired 0s ago"},
		{name: "expired", expiresAt: at(-5 * time.Minute), expected: "expired 5m0s ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatExpiry(tt.expiresAt, now))
		})
	}
}
