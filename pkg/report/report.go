// Package report serializes detection results for people and for the build
// orchestrators that consume them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/uhallgren/ccdetect/pkg/detect"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

// Format is an output encoding.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported format.
var Formats = []Format{FormatPretty, FormatJSON, FormatTOML, FormatMsgpack}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("report: unknown format %q", s)
}

// Report is the serializable form of a detection result.
type Report struct {
	Build string  `json:"build" toml:"build" msgpack:"build"`
	CC    []Entry `json:"cc" toml:"cc" msgpack:"cc"`
	CXX   []Entry `json:"cxx" toml:"cxx" msgpack:"cxx"`
}

// Entry describes the compiler of one target. Archiver is only set for C
// compilers; an empty archiver means none applies.
type Entry struct {
	Target   string   `json:"target" toml:"target" msgpack:"target"`
	Path     string   `json:"path" toml:"path" msgpack:"path"`
	Args     []string `json:"args,omitempty" toml:"args,omitempty" msgpack:"args,omitempty"`
	Archiver string   `json:"archiver,omitempty" toml:"archiver,omitempty" msgpack:"archiver,omitempty"`
}

// New builds a report with entries sorted by target.
func New(build toolchain.Triple, res *detect.Result) *Report {
	r := &Report{Build: string(build)}

	for _, t := range res.Triples(toolchain.LanguageC) {
		cc := res.CC[t]
		r.CC = append(r.CC, Entry{
			Target:   string(t),
			Path:     cc.Path,
			Args:     cc.Args(),
			Archiver: res.AR[t].Path,
		})
	}
	for _, t := range res.Triples(toolchain.LanguageCPlusPlus) {
		cxx := res.CXX[t]
		r.CXX = append(r.CXX, Entry{
			Target: string(t),
			Path:   cxx.Path,
			Args:   cxx.Args(),
		})
	}

	return r
}

// Result rebuilds the detection result. Compile options are the fixed
// defaults every resolved compiler carries.
func (r *Report) Result() *detect.Result {
	res := &detect.Result{
		CC:  make(map[toolchain.Triple]toolchain.Compiler, len(r.CC)),
		CXX: make(map[toolchain.Triple]toolchain.Compiler, len(r.CXX)),
		AR:  make(map[toolchain.Triple]toolchain.Archiver, len(r.CC)),
	}

	for _, e := range r.CC {
		t := toolchain.Triple(e.Target)
		res.CC[t] = toolchain.Compiler{
			Target:   t,
			Language: toolchain.LanguageC,
			Path:     e.Path,
			Options:  toolchain.DefaultCompileOptions(t),
		}
		res.AR[t] = toolchain.Archiver{Path: e.Archiver}
	}
	for _, e := range r.CXX {
		t := toolchain.Triple(e.Target)
		res.CXX[t] = toolchain.Compiler{
			Target:   t,
			Language: toolchain.LanguageCPlusPlus,
			Path:     e.Path,
			Options:  toolchain.DefaultCompileOptions(t),
		}
	}

	return res
}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, format Format) error {
	var err error

	switch format {
	case FormatPretty:
		err = r.writePretty(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(r)
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}

	if err != nil {
		return fmt.Errorf("report: failed to encode %s: %w", format, err)
	}
	return nil
}

// Decode reads a report written by Encode in a machine readable format.
func Decode(rd io.Reader, format Format) (*Report, error) {
	r := &Report{}
	var err error

	switch format {
	case FormatJSON:
		err = json.NewDecoder(rd).Decode(r)
	case FormatTOML:
		_, err = toml.NewDecoder(rd).Decode(r)
	case FormatMsgpack:
		err = msgpack.NewDecoder(rd).Decode(r)
	default:
		return nil, fmt.Errorf("report: cannot decode format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("report: failed to decode %s: %w", format, err)
	}
	return r, nil
}

var (
	headerColor = color.New(color.Bold)
	targetColor = color.New(color.FgCyan)
	pathColor   = color.New(color.FgGreen)
	noneColor   = color.New(color.FgYellow)
)

func (r *Report) writePretty(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s %s\n", headerColor.Sprint("build:"), r.Build)
	section := func(title string, entries []Entry, archivers bool) {
		fmt.Fprintf(tw, "\n%s\n", headerColor.Sprint(title))
		for _, e := range entries {
			line := fmt.Sprintf("  %s\t%s\t%s", targetColor.Sprint(e.Target), pathColor.Sprint(e.Path), strings.Join(e.Args, " "))
			if archivers {
				ar := pathColor.Sprint(e.Archiver)
				if e.Archiver == "" {
					ar = noneColor.Sprint("<none>")
				}
				line += "\tar: " + ar
			}
			fmt.Fprintln(tw, line)
		}
	}
	section("C compilers", r.CC, true)
	section("C++ compilers", r.CXX, false)

	return tw.Flush()
}
