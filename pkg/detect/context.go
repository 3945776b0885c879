package detect

import (
	"os"

	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

// Override holds the per-target settings that replace or steer detection.
// Empty fields are absent.
type Override struct {
	// CC is the C compiler to use verbatim.
	CC string
	// CXX is the C++ compiler to use verbatim.
	CXX string
	// AR is the archiver to use verbatim.
	AR string
	// NDK is the root of an Android NDK standalone toolchain.
	NDK string
	// MuslRoot is the root of a musl installation for this target.
	MuslRoot string
}

// Compiler returns the compiler override for lang.
func (o Override) Compiler(lang toolchain.Language) string {
	if lang == toolchain.LanguageCPlusPlus {
		return o.CXX
	}
	return o.CC
}

// OverrideLookup finds the override configured for a target, if any.
type OverrideLookup interface {
	Override(target toolchain.Triple) (Override, bool)
}

// Overrides is an OverrideLookup backed by a map.
type Overrides map[toolchain.Triple]Override

func (o Overrides) Override(target toolchain.Triple) (Override, bool) {
	ov, ok := o[target]
	return ov, ok
}

// Context is the read-only build state detection runs against.
type Context struct {
	// Build is the triple of the machine running the build.
	Build toolchain.Triple
	// Targets the build produces artifacts for.
	Targets []toolchain.Triple
	// Hosts the build's tools will run on.
	Hosts []toolchain.Triple
	// Overrides looks up per-target configuration. May be nil.
	Overrides OverrideLookup
	// MuslRoot is the musl installation used by targets without their own.
	MuslRoot string
	// Getenv reads the process environment. Defaults to os.Getenv.
	Getenv func(key string) string
}

func (c *Context) override(target toolchain.Triple) Override {
	if c.Overrides == nil {
		return Override{}
	}
	ov, _ := c.Overrides.Override(target)
	return ov
}

func (c *Context) getenv(key string) string {
	if c.Getenv == nil {
		return os.Getenv(key)
	}
	return c.Getenv(key)
}

func (c *Context) muslRoot(target toolchain.Triple) string {
	if root := c.override(target).MuslRoot; root != "" {
		return root
	}
	return c.MuslRoot
}

// CTargets returns every triple that needs a C compiler: all targets, all
// hosts and the build triple.
func CTargets(c *Context) *toolchain.TargetSet {
	s := toolchain.NewTargetSet(c.Targets...)
	s.Add(c.Hosts...)
	s.Add(c.Build)
	return s
}

// CXXTargets returns every triple that needs a C++ compiler: all hosts and
// the build triple.
func CXXTargets(c *Context) *toolchain.TargetSet {
	s := toolchain.NewTargetSet(c.Hosts...)
	s.Add(c.Build)
	return s
}
