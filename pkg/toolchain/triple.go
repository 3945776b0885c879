package toolchain

import (
	"runtime"
	"sort"
	"strings"
)

// Triple identifies a platform, e.g. "x86_64-unknown-linux-gnu".
// Triples are compared by exact string equality and never normalized.
type Triple string

func (t Triple) String() string {
	return string(t)
}

// Contains reports whether substr occurs anywhere in the triple.
func (t Triple) Contains(substr string) bool {
	return strings.Contains(string(t), substr)
}

// IsMSVC reports whether the triple selects the MSVC toolchain family.
func (t Triple) IsMSVC() bool {
	return t.Contains("msvc")
}

// TargetSet is a deduplicated collection of triples.
// The zero value is an empty set ready to use.
type TargetSet struct {
	m map[Triple]struct{}
}

// NewTargetSet returns a set holding the given triples.
func NewTargetSet(triples ...Triple) *TargetSet {
	s := &TargetSet{}
	s.Add(triples...)
	return s
}

// Add inserts the triples into the set. Duplicates are ignored.
func (s *TargetSet) Add(triples ...Triple) {
	if s.m == nil {
		s.m = make(map[Triple]struct{}, len(triples))
	}
	for _, t := range triples {
		s.m[t] = struct{}{}
	}
}

// Len returns the number of distinct triples.
func (s *TargetSet) Len() int {
	return len(s.m)
}

// Sorted returns the triples in lexical order, so that iteration is
// reproducible across runs.
func (s *TargetSet) Sorted() []Triple {
	out := make([]Triple, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var goarchToArch = map[string]string{
	"386":      "i686",
	"amd64":    "x86_64",
	"arm":      "armv7",
	"arm64":    "aarch64",
	"loong64":  "loongarch64",
	"mips":     "mips",
	"mipsle":   "mipsel",
	"mips64":   "mips64",
	"mips64le": "mips64el",
	"ppc64":    "powerpc64",
	"ppc64le":  "powerpc64le",
	"riscv64":  "riscv64gc",
	"s390x":    "s390x",
}

// HostTriple returns the triple of the machine running this process, derived
// from GOOS and GOARCH. It returns an empty triple for unknown platforms.
func HostTriple() Triple {
	return tripleFor(runtime.GOOS, runtime.GOARCH)
}

func tripleFor(goos, goarch string) Triple {
	arch, ok := goarchToArch[goarch]
	if !ok {
		return ""
	}

	switch goos {
	case "linux":
		if arch == "armv7" {
			return Triple(arch + "-unknown-linux-gnueabihf")
		}
		return Triple(arch + "-unknown-linux-gnu")
	case "android":
		if arch == "armv7" {
			return "armv7-linux-androideabi"
		}
		return Triple(arch + "-linux-android")
	case "darwin":
		if arch == "aarch64" {
			return "aarch64-apple-darwin"
		}
		return Triple(arch + "-apple-darwin")
	case "windows":
		return Triple(arch + "-pc-windows-msvc")
	case "freebsd", "netbsd", "openbsd", "dragonfly":
		return Triple(arch + "-unknown-" + goos)
	case "solaris", "illumos":
		return Triple(arch + "-pc-" + goos)
	default:
		return ""
	}
}
