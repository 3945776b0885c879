// Package log provides functionality similar to the standard log package with
// verbosity levels:
//   - a global verbosity setting shared by all packages
//   - ability to redirect or silence all output
package log

import (
	"fmt"
	"io"
	golog "log"
	"os"
	"sync"
)

var (
	mu        sync.Mutex
	verbosity int
	logger    = golog.New(os.Stderr, "", golog.LstdFlags)
)

// SetVerbosity sets the maximum level printed by Logf.
func SetVerbosity(v int) {
	mu.Lock()
	defer mu.Unlock()
	verbosity = v
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// SetFlags sets the standard log flags used for every line.
func SetFlags(flags int) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetFlags(flags)
}

// V reports whether messages at level v are printed.
func V(v int) bool {
	mu.Lock()
	defer mu.Unlock()
	return v <= verbosity
}

func Logf(v int, msg string, args ...interface{}) {
	mu.Lock()
	doLog := v <= verbosity
	mu.Unlock()
	if doLog {
		logger.Output(2, fmt.Sprintf(msg, args...))
	}
}

func Fatalf(msg string, args ...interface{}) {
	logger.Output(2, "FATAL: "+fmt.Sprintf(msg, args...))
	os.Exit(1)
}
