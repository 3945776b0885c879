package toolchain

import "fmt"

// Language is the source language a native compiler is resolved for.
type Language int

const (
	// LanguageC selects a C compiler.
	LanguageC Language = iota
	// LanguageCPlusPlus selects a C++ compiler.
	LanguageCPlusPlus
)

// GCC returns the name of the compiler in the GCC collection.
func (l Language) GCC() string {
	if l == LanguageCPlusPlus {
		return "g++"
	}
	return "gcc"
}

// Clang returns the name of the compiler in the clang suite.
func (l Language) Clang() string {
	if l == LanguageCPlusPlus {
		return "clang++"
	}
	return "clang"
}

// Traditional returns the system compiler driver name, "cc" or "c++".
func (l Language) Traditional() string {
	if l == LanguageCPlusPlus {
		return "c++"
	}
	return "cc"
}

// EnvName returns the environment variable conventionally holding the
// compiler for this language.
func (l Language) EnvName() string {
	if l == LanguageCPlusPlus {
		return "CXX"
	}
	return "CC"
}

func (l Language) String() string {
	switch l {
	case LanguageC:
		return "C"
	case LanguageCPlusPlus:
		return "C++"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}
