// Package config loads the build configuration that steers compiler
// detection from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
	"gopkg.in/yaml.v3"

	"github.com/uhallgren/ccdetect/pkg/detect"
	"github.com/uhallgren/ccdetect/pkg/toolchain"
)

// DefaultMaxVersionOutput is the default cap on the captured output of a
// compiler version query.
const DefaultMaxVersionOutput = "64KiB"

// Format is a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf guesses the format of a configuration file from its extension.
// Files without a known extension are TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config is the parsed build configuration.
type Config struct {
	Build BuildConfig `toml:"build" yaml:"build"`
	// Target holds per-target settings keyed by triple.
	Target map[string]TargetConfig `toml:"target" yaml:"target"`
}

// BuildConfig holds the settings shared by all targets.
type BuildConfig struct {
	// Build is the triple of the build machine. Defaults to the triple of
	// the running process.
	Build string `toml:"build" yaml:"build"`
	// Host lists the triples the build's tools run on. Defaults to Build.
	Host []string `toml:"host" yaml:"host"`
	// Target lists the triples artifacts are built for. Defaults to Host.
	Target []string `toml:"target" yaml:"target"`
	// MuslRoot is the musl installation of musl targets without their own.
	MuslRoot string `toml:"musl-root" yaml:"musl-root"`
	// Parallelism bounds concurrent detection. Zero means one per CPU.
	Parallelism int `toml:"parallelism" yaml:"parallelism"`
	// MaxVersionOutput caps captured compiler version output, as a human
	// readable size such as "64KiB".
	MaxVersionOutput string `toml:"max-version-output" yaml:"max-version-output"`
}

// TargetConfig holds the settings of one target.
type TargetConfig struct {
	CC         string `toml:"cc" yaml:"cc"`
	CXX        string `toml:"cxx" yaml:"cxx"`
	AR         string `toml:"ar" yaml:"ar"`
	AndroidNDK string `toml:"android-ndk" yaml:"android-ndk"`
	MuslRoot   string `toml:"musl-root" yaml:"musl-root"`
}

var _ detect.OverrideLookup = (*Config)(nil)

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration in the given format.
// Unknown keys are rejected.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := &Config{}

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the decoders cannot.
func (c *Config) Validate() error {
	if c.Build.Parallelism < 0 {
		return fmt.Errorf("build.parallelism must not be negative, got %d", c.Build.Parallelism)
	}
	if _, err := c.VersionOutputLimit(); err != nil {
		return err
	}

	for _, list := range [][]string{c.Build.Host, c.Build.Target} {
		for _, t := range list {
			if strings.TrimSpace(t) == "" {
				return errors.New("empty triple in build.host or build.target")
			}
		}
	}
	for t := range c.Target {
		if strings.TrimSpace(t) == "" {
			return errors.New("empty triple in target table")
		}
	}

	return nil
}

// VersionOutputLimit returns the cap on captured version output in bytes.
func (c *Config) VersionOutputLimit() (int64, error) {
	size := c.Build.MaxVersionOutput
	if size == "" {
		size = DefaultMaxVersionOutput
	}

	n, err := units.RAMInBytes(size)
	if err != nil {
		return 0, fmt.Errorf("invalid build.max-version-output: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid build.max-version-output: %q is negative", size)
	}
	return n, nil
}

// Override returns the overrides configured for target.
func (c *Config) Override(target toolchain.Triple) (detect.Override, bool) {
	tc, ok := c.Target[string(target)]
	if !ok {
		return detect.Override{}, false
	}

	return detect.Override{
		CC:       tc.CC,
		CXX:      tc.CXX,
		AR:       tc.AR,
		NDK:      tc.AndroidNDK,
		MuslRoot: tc.MuslRoot,
	}, true
}

// Context builds the detection context, filling in defaults: the build
// triple of the running process, the build triple as the only host and the
// hosts as targets.
func (c *Config) Context(getenv func(string) string) (*detect.Context, error) {
	build := toolchain.Triple(c.Build.Build)
	if build == "" {
		build = toolchain.HostTriple()
	}
	if build == "" {
		return nil, errors.New("config: cannot derive the build triple of this platform, set build.build")
	}

	hosts := triples(c.Build.Host)
	if len(hosts) == 0 {
		hosts = []toolchain.Triple{build}
	}
	targets := triples(c.Build.Target)
	if len(targets) == 0 {
		targets = hosts
	}

	return &detect.Context{
		Build:     build,
		Hosts:     hosts,
		Targets:   targets,
		Overrides: c,
		MuslRoot:  c.Build.MuslRoot,
		Getenv:    getenv,
	}, nil
}

func triples(in []string) []toolchain.Triple {
	out := make([]toolchain.Triple, 0, len(in))
	for _, s := range in {
		out = append(out, toolchain.Triple(s))
	}
	return out
}
