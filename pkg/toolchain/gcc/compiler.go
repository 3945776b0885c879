package gcc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner launches compiler processes. The zero value captures output
// without limit.
type Runner struct {
	// MaxOutput caps the number of bytes of captured output. Output past the
	// cap is discarded. Zero or negative means no cap.
	MaxOutput int64
}

// VersionOutput runs the compiler with --version and returns its combined
// standard output and standard error.
func (r Runner) VersionOutput(ctx context.Context, path string) (string, error) {
	out := &cappedBuffer{max: r.MaxOutput}
	cmd := execCommandContext(ctx, path, "--version")
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gcc: failed to query version of %q: %w", path, err)
	}

	return out.String(), nil
}

// CanLaunch reports whether name can be started as a process. It runs the
// binary without arguments and ignores its exit status.
func (r Runner) CanLaunch(ctx context.Context, name string) bool {
	err := execCommandContext(ctx, name).Run()
	if err == nil {
		return true
	}

	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// IsLegacyVersion reports whether a version banner names a GCC release
// between 4.0 and 4.6, which is too old to build modern C and C++ code.
// Only the first " 4." in the output is considered.
func IsLegacyVersion(output string) bool {
	i := strings.Index(output, " 4.")
	if i < 0 || i+3 >= len(output) {
		return false
	}

	c := output[i+3]
	return c >= '0' && c <= '6'
}

// ParseVersion returns the version number from the first line of a version
// banner: the last word that starts with a digit and contains a dot, e.g.
// "4.2.1" for "gcc (GCC) 4.2.1 20070719". Without such a word the last word
// of the line is returned.
func ParseVersion(output string) string {
	line := output
	if end := strings.IndexAny(line, "\r\n"); end != -1 {
		line = line[:end]
	}

	fields := strings.Fields(line)
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if f[0] >= '0' && f[0] <= '9' && strings.Contains(f, ".") {
			return f
		}
	}
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

type cappedBuffer struct {
	bytes.Buffer
	max int64
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.max > 0 {
		room := b.max - int64(b.Len())
		if room <= 0 {
			return len(p), nil
		}
		if int64(len(p)) > room {
			b.Buffer.Write(p[:room])
			return len(p), nil
		}
	}
	return b.Buffer.Write(p)
}
