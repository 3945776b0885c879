package detect

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/uhallgren/ccdetect/pkg/log"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
	"github.com/uhallgren/ccdetect/pkg/toolchain/gcc"
)

// platform is the class of targets a quirk applies to. A target belongs to
// exactly one class; the first matching one in declaration order wins.
type platform int

const (
	platformOther platform = iota
	platformAndroid
	platformOpenBSD
	platformMIPSMusl
	platformMusl
)

func (p platform) String() string {
	switch p {
	case platformAndroid:
		return "android"
	case platformOpenBSD:
		return "openbsd"
	case platformMIPSMusl:
		return "mips-musl"
	case platformMusl:
		return "musl"
	default:
		return "other"
	}
}

// mipsMuslCompilers are the cross compilers of the MIPS musl targets.
var mipsMuslCompilers = map[toolchain.Triple]string{
	"mips-unknown-linux-musl":   "mips-linux-musl-gcc",
	"mipsel-unknown-linux-musl": "mipsel-linux-musl-gcc",
}

func classify(target toolchain.Triple) platform {
	switch {
	case target.Contains("android"):
		return platformAndroid
	case target.Contains("openbsd"):
		return platformOpenBSD
	case mipsMuslCompilers[target] != "":
		return platformMIPSMusl
	case target.Contains("musl"):
		return platformMusl
	default:
		return platformOther
	}
}

// quirk is the input of a platform correction: the prober's pick for a
// target without a compiler override.
type quirk struct {
	initial  string
	target   toolchain.Triple
	lang     toolchain.Language
	override Override
	muslRoot string
}

// decisions buffers the level 2 messages of one resolution, so that
// concurrent resolutions are reported in target order.
type decisions []string

func (ds *decisions) logf(msg string, args ...interface{}) {
	if log.V(2) {
		*ds = append(*ds, fmt.Sprintf(msg, args...))
	}
}

func (ds decisions) flush() {
	for _, msg := range ds {
		log.Logf(2, "%s", msg)
	}
}

// ResolveQuirk corrects the prober's initial pick for target where the
// platform default is known to be wrong. It returns initial when no
// correction applies or any probe needed to decide fails.
func (d *Detector) ResolveQuirk(ctx context.Context, bctx *Context, target toolchain.Triple, lang toolchain.Language, initial string) string {
	var ds decisions
	path := d.resolveQuirk(ctx, bctx, target, lang, initial, &ds)
	ds.flush()
	return path
}

func (d *Detector) resolveQuirk(ctx context.Context, bctx *Context, target toolchain.Triple, lang toolchain.Language, initial string, ds *decisions) string {
	q := quirk{
		initial:  initial,
		target:   target,
		lang:     lang,
		override: bctx.override(target),
		muslRoot: bctx.muslRoot(target),
	}

	var path string
	switch classify(target) {
	case platformAndroid:
		path = androidQuirk(q)
	case platformOpenBSD:
		path = d.openBSDQuirk(ctx, q, ds)
	case platformMIPSMusl:
		path = mipsMuslQuirk(q)
	case platformMusl:
		path = d.muslQuirk(q)
	default:
		path = initial
	}

	if path != initial {
		ds.logf("%s_%s: %s replaced by %s", lang.EnvName(), target, initial, path)
	}
	return path
}

// androidQuirk uses the NDK's clang when an NDK is configured. The NDK
// names armv7 targets with an "arm" architecture.
func androidQuirk(q quirk) string {
	if q.override.NDK == "" {
		return q.initial
	}

	name := androidTriple(q.target) + "-" + q.lang.Clang()
	return filepath.Join(q.override.NDK, "bin", name)
}

// openBSDQuirk swaps a GCC 4.0 to 4.6 from the base system for the newer
// GCC from ports, installed as egcc and eg++, when one can be launched.
// Only a compiler whose file name is exactly gcc or g++ is inspected, so
// clang++ and prefixed cross compilers are left alone.
func (d *Detector) openBSDQuirk(ctx context.Context, q quirk, ds *decisions) string {
	gnu := q.lang.GCC()
	if filepath.Base(q.initial) != gnu {
		return q.initial
	}

	out, err := d.runner().VersionOutput(ctx, q.initial)
	if err != nil {
		ds.logf("%s: %v", q.target, err)
		return q.initial
	}
	if !gcc.IsLegacyVersion(out) {
		return q.initial
	}

	alternative := gcc.Alternate(gnu)
	ds.logf("%s: %s %s is too old, trying %s", q.target, q.initial, gcc.ParseVersion(out), alternative)
	if !d.runner().CanLaunch(ctx, alternative) {
		return q.initial
	}
	return alternative
}

// mipsMuslQuirk only replaces the bare default "gcc", so a compiler picked
// on purpose is kept.
func mipsMuslQuirk(q quirk) string {
	if q.initial != "gcc" {
		return q.initial
	}
	return mipsMuslCompilers[q.target]
}

// muslQuirk uses the musl-gcc wrapper of the target's musl installation if
// it exists.
func (d *Detector) muslQuirk(q quirk) string {
	if q.muslRoot == "" {
		return q.initial
	}

	guess := filepath.Join(q.muslRoot, "bin", "musl-gcc")
	if _, err := d.stat(guess); err != nil {
		return q.initial
	}
	return guess
}
