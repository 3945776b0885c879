package detect_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uhallgren/ccdetect/pkg/detect"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

func TestEnvProber(t *testing.T) {
	const (
		build  = toolchain.Triple("x86_64-unknown-linux-gnu")
		target = toolchain.Triple("aarch64-unknown-linux-gnu")
	)

	type test struct {
		name   string
		target toolchain.Triple
		lang   toolchain.Language
		env    map[string]string
		expect string
	}

	tests := []test{
		{
			name:   "TargetVariable",
			target: target,
			env: map[string]string{
				"CC_aarch64-unknown-linux-gnu": "/opt/a/gcc",
				"CC_aarch64_unknown_linux_gnu": "/opt/b/gcc",
				"TARGET_CC":                    "/opt/c/gcc",
				"CC":                           "/opt/d/gcc",
			},
			expect: "/opt/a/gcc",
		},
		{
			name:   "UnderscoredVariable",
			target: target,
			env: map[string]string{
				"CC_aarch64_unknown_linux_gnu": "/opt/b/gcc",
				"TARGET_CC":                    "/opt/c/gcc",
			},
			expect: "/opt/b/gcc",
		},
		{
			name:   "TargetKind",
			target: target,
			env:    map[string]string{"TARGET_CC": "/opt/c/gcc", "HOST_CC": "/opt/h/gcc", "CC": "/opt/d/gcc"},
			expect: "/opt/c/gcc",
		},
		{
			name:   "HostKind",
			target: build,
			env:    map[string]string{"TARGET_CC": "/opt/c/gcc", "HOST_CC": "/opt/h/gcc", "CC": "/opt/d/gcc"},
			expect: "/opt/h/gcc",
		},
		{
			name:   "Generic",
			target: target,
			env:    map[string]string{"CC": "ccache  gcc -m64"},
			expect: "ccache",
		},
		{
			name:   "CXX",
			target: target,
			lang:   toolchain.LanguageCPlusPlus,
			env:    map[string]string{"CC": "/opt/d/gcc", "CXX": "/opt/d/g++"},
			expect: "/opt/d/g++",
		},
		{
			name:   "BlankIgnored",
			target: target,
			env:    map[string]string{"CC_aarch64-unknown-linux-gnu": "  "},
			expect: "aarch64-linux-gnu-gcc",
		},
		{
			name:   "Default",
			target: target,
			lang:   toolchain.LanguageCPlusPlus,
			expect: "aarch64-linux-gnu-g++",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := detect.EnvProber{Getenv: env(tt.env)}
			require.Equal(t, tt.expect, p.Probe(tt.target, build, tt.lang, false))
		})
	}
}

func TestDefaultCompiler(t *testing.T) {
	type test struct {
		target, host toolchain.Triple
		lang         toolchain.Language
		expect       string
	}

	tests := []test{
		{"x86_64-pc-windows-msvc", "x86_64-pc-windows-msvc", toolchain.LanguageC, "cl.exe"},
		{"i686-pc-windows-msvc", "x86_64-pc-windows-msvc", toolchain.LanguageCPlusPlus, "cl.exe"},
		{"x86_64-unknown-linux-gnu", "x86_64-unknown-linux-gnu", toolchain.LanguageC, "cc"},
		{"x86_64-unknown-linux-gnu", "x86_64-unknown-linux-gnu", toolchain.LanguageCPlusPlus, "c++"},
		{"x86_64-unknown-openbsd", "x86_64-unknown-openbsd", toolchain.LanguageC, "gcc"},
		{"x86_64-pc-solaris", "x86_64-pc-solaris", toolchain.LanguageCPlusPlus, "g++"},
		{"armv7-linux-androideabi", "x86_64-unknown-linux-gnu", toolchain.LanguageC, "arm-linux-androideabi-gcc"},
		{"aarch64-linux-android", "x86_64-unknown-linux-gnu", toolchain.LanguageCPlusPlus, "aarch64-linux-android-g++"},
		{"arm-unknown-linux-gnueabihf", "x86_64-unknown-linux-gnu", toolchain.LanguageC, "arm-linux-gnueabihf-gcc"},
		{"x86_64-unknown-linux-musl", "x86_64-unknown-linux-gnu", toolchain.LanguageC, "musl-gcc"},
		{"mips-unknown-linux-musl", "x86_64-unknown-linux-gnu", toolchain.LanguageC, "gcc"},
		{"x86_64-unknown-openbsd", "x86_64-unknown-linux-gnu", toolchain.LanguageC, "gcc"},
	}

	for _, tt := range tests {
		t.Run(tt.target.String()+"/"+tt.lang.String(), func(t *testing.T) {
			require.Equal(t, tt.expect, detect.DefaultCompiler(tt.target, tt.host, tt.lang))
		})
	}
}
