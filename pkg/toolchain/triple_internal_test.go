package toolchain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTripleFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		expect       Triple
	}{
		{"linux", "amd64", "x86_64-unknown-linux-gnu"},
		{"linux", "arm", "armv7-unknown-linux-gnueabihf"},
		{"android", "arm", "armv7-linux-androideabi"},
		{"android", "arm64", "aarch64-linux-android"},
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"windows", "amd64", "x86_64-pc-windows-msvc"},
		{"openbsd", "amd64", "x86_64-unknown-openbsd"},
		{"illumos", "amd64", "x86_64-pc-illumos"},
		{"plan9", "amd64", ""},
		{"linux", "wasm", ""},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			require.Equal(t, tt.expect, tripleFor(tt.goos, tt.goarch))
		})
	}
}
