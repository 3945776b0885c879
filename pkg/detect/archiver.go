package detect

import (
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

// ArchiverEnv is the environment variable overriding the archiver of every
// target.
const ArchiverEnv = "AR"

// ResolveArchiver picks the archiver paired with the C compiler cc resolved
// for target. In order of precedence: the target's ar override, the AR
// environment variable, none for MSVC, "ar" for musl and OpenBSD, and else
// the archiver inferred from the compiler's file name.
func ResolveArchiver(bctx *Context, target toolchain.Triple, cc toolchain.Compiler) toolchain.Archiver {
	if ar := bctx.override(target).AR; ar != "" {
		return toolchain.Archiver{Path: ar}
	}
	if ar := bctx.getenv(ArchiverEnv); ar != "" {
		return toolchain.Archiver{Path: ar}
	}

	switch {
	case target.IsMSVC():
		return toolchain.Archiver{}
	case target.Contains("musl"), target.Contains("openbsd"):
		return toolchain.Archiver{Path: "ar"}
	default:
		return toolchain.Archiver{Path: toolchain.InferArchiver(cc.Path)}
	}
}
