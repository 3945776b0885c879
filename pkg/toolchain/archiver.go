package toolchain

import (
	"path/filepath"
	"strings"
)

// Archiver is the static library archiver paired with a resolved C compiler.
// The zero value means no archiver applies to the target, as for MSVC where
// archiving is done by the linker driver.
type Archiver struct {
	Path string
}

// None reports whether no archiver applies.
func (a Archiver) None() bool {
	return a.Path == ""
}

func (a Archiver) String() string {
	if a.None() {
		return "<none>"
	}
	return a.Path
}

var compilerSuffixes = [...]string{"gcc", "cc", "clang"}

// InferArchiver guesses the archiver that ships next to the compiler at
// compilerPath. The rightmost "gcc", "cc" or "clang" in the file name (tried
// in that order) and everything after it is replaced by "ar", keeping any
// cross-compile prefix: "/usr/bin/arm-linux-gnueabihf-gcc" gives
// "/usr/bin/arm-linux-gnueabihf-ar". When none of them occur the compiler
// path itself is returned.
func InferArchiver(compilerPath string) string {
	dir, file := filepath.Split(compilerPath)
	for _, suffix := range compilerSuffixes {
		if i := strings.LastIndex(file, suffix); i >= 0 {
			return dir + file[:i] + "ar"
		}
	}
	return dir + file
}
