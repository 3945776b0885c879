/*
Package gcc implements the process boundary for GCC-family compilers:
querying a compiler's version banner, recognizing legacy 4.x releases and
probing whether an alternate compiler binary can be launched.
*/
package gcc

import (
	"os/exec"
)

// AlternatePrefix is prepended to a GCC compiler name to form the name of a
// newer GCC installed from ports next to an old base system compiler, as on
// OpenBSD ("egcc", "eg++").
const AlternatePrefix = "e"

var execCommandContext = exec.CommandContext

// Alternate returns the alternate binary name for a GCC compiler name.
func Alternate(gccName string) string {
	return AlternatePrefix + gccName
}
