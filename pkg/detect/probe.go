package detect

import (
	"strings"

	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

// Prober makes the initial best guess for the compiler of a target when no
// override is configured.
type Prober interface {
	Probe(target, host toolchain.Triple, lang toolchain.Language, staticCRT bool) string
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(target, host toolchain.Triple, lang toolchain.Language, staticCRT bool) string

func (f ProberFunc) Probe(target, host toolchain.Triple, lang toolchain.Language, staticCRT bool) string {
	return f(target, host, lang, staticCRT)
}

// EnvProber picks a compiler from the environment, falling back to the
// platform's conventional compiler name. For C the variables consulted are,
// in order: CC_<target>, CC_<target with '-' replaced by '_'>, TARGET_CC
// when cross compiling or HOST_CC otherwise, and CC. C++ uses CXX in place
// of CC. Only the first word of a variable is used as the executable.
type EnvProber struct {
	// Getenv reads the environment. It must not be nil.
	Getenv func(key string) string
}

func (p EnvProber) Probe(target, host toolchain.Triple, lang toolchain.Language, staticCRT bool) string {
	if path := p.fromEnv(target, host, lang); path != "" {
		return path
	}
	return DefaultCompiler(target, host, lang)
}

func (p EnvProber) fromEnv(target, host toolchain.Triple, lang toolchain.Language) string {
	v := lang.EnvName()
	kind := "TARGET"
	if target == host {
		kind = "HOST"
	}

	keys := [...]string{
		v + "_" + string(target),
		v + "_" + strings.ReplaceAll(string(target), "-", "_"),
		kind + "_" + v,
		v,
	}
	for _, key := range keys {
		if fields := strings.Fields(p.Getenv(key)); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// crossPrefixes maps targets to the prefix of their GNU cross toolchain.
var crossPrefixes = map[toolchain.Triple]string{
	"aarch64-unknown-linux-gnu":       "aarch64-linux-gnu",
	"aarch64-unknown-linux-musl":      "aarch64-linux-musl",
	"arm-unknown-linux-gnueabi":       "arm-linux-gnueabi",
	"arm-unknown-linux-gnueabihf":     "arm-linux-gnueabihf",
	"arm-unknown-linux-musleabi":      "arm-linux-musleabi",
	"arm-unknown-linux-musleabihf":    "arm-linux-musleabihf",
	"armv7-unknown-linux-gnueabihf":   "arm-linux-gnueabihf",
	"armv7-unknown-linux-musleabihf":  "arm-linux-musleabihf",
	"i686-pc-windows-gnu":             "i686-w64-mingw32",
	"i686-unknown-linux-musl":         "musl",
	"mips-unknown-linux-gnu":          "mips-linux-gnu",
	"mipsel-unknown-linux-gnu":        "mipsel-linux-gnu",
	"mips64-unknown-linux-gnuabi64":   "mips64-linux-gnuabi64",
	"mips64el-unknown-linux-gnuabi64": "mips64el-linux-gnuabi64",
	"powerpc-unknown-linux-gnu":       "powerpc-linux-gnu",
	"powerpc64-unknown-linux-gnu":     "powerpc-linux-gnu",
	"powerpc64le-unknown-linux-gnu":   "powerpc64le-linux-gnu",
	"riscv64gc-unknown-linux-gnu":     "riscv64-linux-gnu",
	"s390x-unknown-linux-gnu":         "s390x-linux-gnu",
	"sparc64-unknown-linux-gnu":       "sparc64-linux-gnu",
	"thumbv6m-none-eabi":              "arm-none-eabi",
	"thumbv7em-none-eabi":             "arm-none-eabi",
	"thumbv7em-none-eabihf":           "arm-none-eabi",
	"thumbv7m-none-eabi":              "arm-none-eabi",
	"x86_64-pc-windows-gnu":           "x86_64-w64-mingw32",
	"x86_64-unknown-linux-gnu":        "x86_64-linux-gnu",
	"x86_64-unknown-linux-musl":       "musl",
	"x86_64-unknown-netbsd":           "x86_64--netbsd",
}

// DefaultCompiler returns the conventional compiler name for target when
// building on host: cl.exe for MSVC, the system driver for native builds,
// the NDK naming scheme for Android and a prefixed GNU compiler when the
// target has a known cross toolchain. Anything else gets the bare GNU name.
func DefaultCompiler(target, host toolchain.Triple, lang toolchain.Language) string {
	switch {
	case target.IsMSVC():
		return "cl.exe"
	case target == host:
		if host.Contains("openbsd") || host.Contains("solaris") || host.Contains("illumos") {
			return lang.GCC()
		}
		return lang.Traditional()
	case target.Contains("android"):
		return androidTriple(target) + "-" + lang.GCC()
	}

	if prefix, ok := crossPrefixes[target]; ok {
		return prefix + "-" + lang.GCC()
	}
	return lang.GCC()
}

// androidTriple returns the NDK spelling of an Android triple, which names
// the armv7 architecture "arm".
func androidTriple(target toolchain.Triple) string {
	return strings.Replace(string(target), "armv7", "arm", 1)
}
