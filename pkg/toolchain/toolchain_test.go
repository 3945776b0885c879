package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

func TestLanguageNames(t *testing.T) {
	type test struct {
		lang        toolchain.Language
		gcc         string
		clang       string
		traditional string
		env         string
	}

	tests := []test{
		{toolchain.LanguageC, "gcc", "clang", "cc", "CC"},
		{toolchain.LanguageCPlusPlus, "g++", "clang++", "c++", "CXX"},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			require.Equal(t, tt.gcc, tt.lang.GCC())
			require.Equal(t, tt.clang, tt.lang.Clang())
			require.Equal(t, tt.traditional, tt.lang.Traditional())
			require.Equal(t, tt.env, tt.lang.EnvName())
		})
	}
}

func TestTargetSet(t *testing.T) {
	s := toolchain.NewTargetSet(
		"x86_64-unknown-linux-gnu",
		"arm-linux-androideabi",
		"x86_64-unknown-linux-gnu",
	)
	s.Add("aarch64-unknown-linux-gnu", "arm-linux-androideabi")

	require.Equal(t, 3, s.Len())
	require.Equal(t, []toolchain.Triple{
		"aarch64-unknown-linux-gnu",
		"arm-linux-androideabi",
		"x86_64-unknown-linux-gnu",
	}, s.Sorted())

	var zero toolchain.TargetSet
	require.Empty(t, zero.Sorted())
	zero.Add("x")
	require.Equal(t, 1, zero.Len())
}

func TestTriple(t *testing.T) {
	tr := toolchain.Triple("x86_64-pc-windows-msvc")
	require.True(t, tr.IsMSVC())
	require.False(t, toolchain.Triple("x86_64-pc-windows-gnu").IsMSVC())
}

func TestInferArchiver(t *testing.T) {
	tests := map[string]string{
		"/usr/bin/arm-linux-gnueabihf-gcc": "/usr/bin/arm-linux-gnueabihf-ar",
		"/usr/bin/clang":                   "/usr/bin/ar",
		"cc":                               "ar",
		"gcc":                              "ar",
		"/opt/x/bin/x86_64-linux-musl-cc":  "/opt/x/bin/x86_64-linux-musl-ar",
		"/opt/tcc/bin/tcc":                 "/opt/tcc/bin/tar",
		"/usr/bin/icx":                     "/usr/bin/icx",
		"/usr/local/bin/gcc-12":            "/usr/local/bin/ar",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, toolchain.InferArchiver(in))
		})
	}
}

func TestArchiverNone(t *testing.T) {
	require.True(t, toolchain.Archiver{}.None())
	require.Equal(t, "<none>", toolchain.Archiver{}.String())
	require.Equal(t, "ar", toolchain.Archiver{Path: "ar"}.String())
}
