/*
Package detect resolves, once per build, the native C and C++ compilers and
the archiver to use for every target platform of the build.

For each target a compiler is found through, in order of precedence:

 1. The cc (or cxx) override configured for the target, used verbatim.
 2. The Prober's pick, usually the CC_<target>, CC_<target_with_underscores>,
    TARGET_CC or HOST_CC, and CC environment variables or the platform
    default, corrected by the platform quirks: the Android NDK's clang,
    egcc in place of an old GCC on OpenBSD, and the musl cross compilers.

Archivers are resolved for the C compilers only; C++ builds share them.
Detection never fails for a target: the worst outcome is a compiler path
that does not work, which the build notices when it runs it.
*/
package detect

import (
	"context"
	"io/fs"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/uhallgren/ccdetect/pkg/log"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
	"github.com/uhallgren/ccdetect/pkg/toolchain/gcc"
)

// Runner launches the compilers inspected by the platform quirks.
// gcc.Runner is the implementation used when none is given.
type Runner interface {
	// VersionOutput returns the combined output of running the compiler
	// with --version.
	VersionOutput(ctx context.Context, path string) (string, error)
	// CanLaunch reports whether the named binary can be started.
	CanLaunch(ctx context.Context, name string) bool
}

// A Detector resolves compilers. The zero value is ready to use.
type Detector struct {
	// Prober makes the initial pick for targets without a compiler
	// override. Defaults to an EnvProber reading the Context's environment.
	Prober Prober
	// Runner launches processes for the OpenBSD quirk. Defaults to gcc.Runner.
	Runner Runner
	// Stat checks files for the musl quirk. Defaults to os.Stat.
	Stat func(name string) (fs.FileInfo, error)
	// Parallelism bounds how many targets resolve concurrently.
	// Defaults to the number of CPUs.
	Parallelism int
}

// Result holds the resolved toolchain of every target.
type Result struct {
	// CC maps every target, host and the build triple to its C compiler.
	CC map[toolchain.Triple]toolchain.Compiler
	// CXX maps every host and the build triple to its C++ compiler.
	CXX map[toolchain.Triple]toolchain.Compiler
	// AR maps every key of CC to its archiver, which may be none.
	AR map[toolchain.Triple]toolchain.Archiver
}

// Compilers returns the mapping of lang.
func (r *Result) Compilers(lang toolchain.Language) map[toolchain.Triple]toolchain.Compiler {
	if lang == toolchain.LanguageCPlusPlus {
		return r.CXX
	}
	return r.CC
}

// Triples returns the keys of the mapping of lang in lexical order.
func (r *Result) Triples(lang toolchain.Language) []toolchain.Triple {
	m := r.Compilers(lang)
	out := make([]toolchain.Triple, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Detect resolves the C compiler and archiver of every triple in
// CTargets(bctx) and the C++ compiler of every triple in CXXTargets(bctx).
// The only error returned is the context's.
func (d *Detector) Detect(ctx context.Context, bctx *Context) (*Result, error) {
	res := &Result{
		CC:  make(map[toolchain.Triple]toolchain.Compiler),
		CXX: make(map[toolchain.Triple]toolchain.Compiler),
		AR:  make(map[toolchain.Triple]toolchain.Archiver),
	}
	// Quirk decisions are buffered per target and logged after Wait.
	ccDecisions := make(map[toolchain.Triple]decisions)
	cxxDecisions := make(map[toolchain.Triple]decisions)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.parallelism())

	for _, target := range CTargets(bctx).Sorted() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var ds decisions
			cc := d.resolveCompiler(gctx, bctx, target, toolchain.LanguageC, &ds)
			ar := ResolveArchiver(bctx, target, cc)

			mu.Lock()
			res.CC[target] = cc
			res.AR[target] = ar
			ccDecisions[target] = ds
			mu.Unlock()
			return nil
		})
	}

	for _, host := range CXXTargets(bctx).Sorted() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var ds decisions
			cxx := d.resolveCompiler(gctx, bctx, host, toolchain.LanguageCPlusPlus, &ds)

			mu.Lock()
			res.CXX[host] = cxx
			cxxDecisions[host] = ds
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, target := range res.Triples(toolchain.LanguageC) {
		ccDecisions[target].flush()
		log.Logf(1, "CC_%s = %q", target, res.CC[target].Path)
		if ar := res.AR[target]; !ar.None() {
			log.Logf(1, "AR_%s = %q", target, ar.Path)
		}
	}
	for _, host := range res.Triples(toolchain.LanguageCPlusPlus) {
		cxxDecisions[host].flush()
		log.Logf(1, "CXX_%s = %q", host, res.CXX[host].Path)
	}

	return res, nil
}

// ResolveCompiler returns the compiler for target and lang. A configured
// override is used verbatim; otherwise the Prober's pick is passed through
// ResolveQuirk.
func (d *Detector) ResolveCompiler(ctx context.Context, bctx *Context, target toolchain.Triple, lang toolchain.Language) toolchain.Compiler {
	var ds decisions
	c := d.resolveCompiler(ctx, bctx, target, lang, &ds)
	ds.flush()
	return c
}

func (d *Detector) resolveCompiler(ctx context.Context, bctx *Context, target toolchain.Triple, lang toolchain.Language, ds *decisions) toolchain.Compiler {
	opts := toolchain.DefaultCompileOptions(target)

	path := bctx.override(target).Compiler(lang)
	if path == "" {
		initial := d.prober(bctx).Probe(target, bctx.Build, lang, opts.StaticCRT)
		path = d.resolveQuirk(ctx, bctx, target, lang, initial, ds)
	}

	return toolchain.Compiler{
		Target:   target,
		Language: lang,
		Path:     path,
		Options:  opts,
	}
}

func (d *Detector) prober(bctx *Context) Prober {
	if d.Prober != nil {
		return d.Prober
	}
	return EnvProber{Getenv: bctx.getenv}
}

func (d *Detector) runner() Runner {
	if d.Runner != nil {
		return d.Runner
	}
	return gcc.Runner{}
}

func (d *Detector) stat(name string) (fs.FileInfo, error) {
	if d.Stat != nil {
		return d.Stat(name)
	}
	return os.Stat(name)
}

func (d *Detector) parallelism() int {
	if d.Parallelism > 0 {
		return d.Parallelism
	}
	return runtime.NumCPU()
}
