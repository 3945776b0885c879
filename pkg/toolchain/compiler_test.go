package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

func TestDefaultCompileOptions(t *testing.T) {
	opts := toolchain.DefaultCompileOptions("x86_64-pc-windows-msvc")
	require.Equal(t, toolchain.CompileOptions{StaticCRT: true}, opts)

	opts = toolchain.DefaultCompileOptions("x86_64-unknown-linux-gnu")
	require.Equal(t, toolchain.CompileOptions{}, opts)
}

func TestCompiler_Family(t *testing.T) {
	tests := map[string]toolchain.Family{
		"cl.exe":                               toolchain.FamilyMSVC,
		"clang-cl":                             toolchain.FamilyMSVC,
		"/usr/bin/clang++":                     toolchain.FamilyClang,
		"/ndk/bin/arm-linux-androideabi-clang": toolchain.FamilyClang,
		"gcc":                                  toolchain.FamilyGNU,
		"cc":                                   toolchain.FamilyGNU,
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			c := toolchain.Compiler{Path: path}
			require.Equal(t, want, c.Family())
		})
	}
}

func TestCompiler_Args(t *testing.T) {
	type test struct {
		name   string
		cc     toolchain.Compiler
		expect []string
	}

	tests := []test{
		{
			name:   "GNU",
			cc:     toolchain.Compiler{Path: "gcc", Options: toolchain.DefaultCompileOptions("x86_64-unknown-linux-gnu")},
			expect: []string{"-O0"},
		},
		{
			name: "GNUDebugWarnings",
			cc: toolchain.Compiler{Path: "/usr/bin/clang", Options: toolchain.CompileOptions{
				OptimizationLevel: toolchain.CompileOptimizationAggressive,
				Warnings:          true,
				Debug:             true,
			}},
			expect: []string{"-O2", "-Wall", "-Wextra", "-g"},
		},
		{
			name:   "MSVCStaticCRT",
			cc:     toolchain.Compiler{Path: "cl.exe", Options: toolchain.DefaultCompileOptions("x86_64-pc-windows-msvc")},
			expect: []string{"-MT", "-Od", "-nologo"},
		},
		{
			name:   "MSVCDynamicCRT",
			cc:     toolchain.Compiler{Path: "cl.exe"},
			expect: []string{"-MD", "-Od", "-nologo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expect, tt.cc.Args())
		})
	}
}

func TestFlags(t *testing.T) {
	flags := make(toolchain.Flags)
	flags.Set("D", "A=1", "B")
	flags.Set("U")
	flags.Set("std", "c11")
	flags.Toggle("pipe")
	flags.Toggle("w")

	require.Equal(t, []string{"-DA=1", "-DB", "-pipe", "-std=c11", "-w"}, flags.Args())
}
