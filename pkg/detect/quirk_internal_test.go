package detect

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

func TestClassify(t *testing.T) {
	tests := map[toolchain.Triple]platform{
		"arm-linux-androideabi":       platformAndroid,
		"x86_64-linux-android":        platformAndroid,
		"x86_64-unknown-openbsd":      platformOpenBSD,
		"mips-unknown-linux-musl":     platformMIPSMusl,
		"mipsel-unknown-linux-musl":   platformMIPSMusl,
		"mips64-unknown-linux-musl":   platformMusl,
		"x86_64-unknown-linux-musl":   platformMusl,
		"x86_64-unknown-linux-gnu":    platformOther,
		"x86_64-pc-windows-msvc":      platformOther,
		"x86_64-unknown-openbsd-musl": platformOpenBSD,
	}

	for target, want := range tests {
		t.Run(target.String(), func(t *testing.T) {
			require.Equal(t, want.String(), classify(target).String())
		})
	}
}
