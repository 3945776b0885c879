package toolchain

import (
	"path/filepath"
	"strings"
)

// CompileOptimizationLevel values are used to specify the optimization level used by the compiler.
type CompileOptimizationLevel int

const (
	// CompileOptimizationNone means no optimization. It is equivalent to -O0 (GCC, Clang) or /Od (MSVC).
	CompileOptimizationNone CompileOptimizationLevel = iota
	// CompileOptimizationModerate is equivalent to -O1 (GCC, Clang) or /O1 (MSVC).
	CompileOptimizationModerate
	// CompileOptimizationAggressive is equivalent to -O2 (GCC, Clang) or /O2 (MSVC).
	CompileOptimizationAggressive
)

// CompileOptions are the compiler-agnostic build settings attached to a
// resolved compiler. Each option is translated to the flags of the compiler
// family by Compiler.Flags.
type CompileOptions struct {
	// OptimizationLevel applied to every object built with this compiler.
	OptimizationLevel CompileOptimizationLevel
	// Warnings enables the compiler's common warning set.
	Warnings bool
	// Debug emits debug information.
	Debug bool
	// StaticCRT links the C runtime statically. Only meaningful for MSVC.
	StaticCRT bool
}

// DefaultCompileOptions returns the fixed options used for compilers resolved
// for target: no optimization, no warnings, no debug information, and a
// static C runtime when the target uses MSVC.
func DefaultCompileOptions(target Triple) CompileOptions {
	return CompileOptions{
		OptimizationLevel: CompileOptimizationNone,
		StaticCRT:         target.IsMSVC(),
	}
}

// Family is the command-line dialect a compiler executable speaks.
type Family int

const (
	FamilyGNU Family = iota
	FamilyClang
	FamilyMSVC
)

func (f Family) String() string {
	switch f {
	case FamilyClang:
		return "clang"
	case FamilyMSVC:
		return "msvc"
	default:
		return "gnu"
	}
}

// Compiler is a native compiler resolved for one target and language.
// It is never modified after resolution.
type Compiler struct {
	// Target the compiler produces code for.
	Target Triple
	// Language the compiler was resolved for.
	Language Language
	// Path of the compiler's executable. A bare name is looked up in PATH.
	Path string
	// Options attached to every invocation of the compiler.
	Options CompileOptions
}

// Family guesses the command-line dialect from the executable name.
func (c Compiler) Family() Family {
	name := strings.ToLower(filepath.Base(c.Path))
	switch {
	case name == "cl" || name == "cl.exe" || name == "clang-cl" || name == "clang-cl.exe":
		return FamilyMSVC
	case strings.Contains(name, "clang"):
		return FamilyClang
	default:
		return FamilyGNU
	}
}

// Flags translates the compile options to the compiler family's flags.
func (c Compiler) Flags() Flags {
	flags := make(Flags)
	opts := c.Options

	if c.Family() == FamilyMSVC {
		flags.Toggle("nologo")
		switch opts.OptimizationLevel {
		case CompileOptimizationNone:
			flags.Toggle("Od")
		case CompileOptimizationModerate:
			flags.Toggle("O1")
		case CompileOptimizationAggressive:
			flags.Toggle("O2")
		}
		if opts.StaticCRT {
			flags.Toggle("MT")
		} else {
			flags.Toggle("MD")
		}
		if opts.Debug {
			flags.Toggle("Z7")
		}
		if opts.Warnings {
			flags.Toggle("W4")
		}
		return flags
	}

	switch opts.OptimizationLevel {
	case CompileOptimizationNone:
		flags.Set("O", "0")
	case CompileOptimizationModerate:
		flags.Set("O", "1")
	case CompileOptimizationAggressive:
		flags.Set("O", "2")
	}
	if opts.Debug {
		flags.Toggle("g")
	}
	if opts.Warnings {
		flags.Toggle("Wall")
		flags.Toggle("Wextra")
	}
	return flags
}

// Args returns the command-line arguments for the compile options.
func (c Compiler) Args() []string {
	return c.Flags().Args()
}
