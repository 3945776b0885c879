package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uhallgren/ccdetect/pkg/config"
	"github.com/uhallgren/ccdetect/pkg/detect"
	"github.com/uhallgren/ccdetect/pkg/report"
	"github.com/uhallgren/ccdetect/pkg/toolchain/gcc"
)

type detectOptions struct {
	configPath string
	build      string
	hosts      []string
	targets    []string
	muslRoot   string
	jobs       int
	format     string
}

func newDetectCmd() *cobra.Command {
	opts := &detectOptions{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the compilers and archivers of every target",
		Long: `Detect resolves a C compiler and an archiver for every target, host and
the build machine, and a C++ compiler for every host and the build machine.

Flags given on the command line replace the values of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.build, "build", "", "triple of the build machine (default: this machine)")
	flags.StringSliceVar(&opts.hosts, "host", nil, "host triples (default: the build triple)")
	flags.StringSliceVar(&opts.targets, "target", nil, "target triples (default: the host triples)")
	flags.StringVar(&opts.muslRoot, "musl-root", "", "musl installation for musl targets")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "targets resolved concurrently (default: one per CPU)")
	flags.StringVarP(&opts.format, "format", "f", string(report.FormatPretty), "output format (pretty|json|toml|msgpack)")

	return cmd
}

func runDetect(cmd *cobra.Command, opts *detectOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg := &config.Config{}
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}

	if opts.build != "" {
		cfg.Build.Build = opts.build
	}
	if len(opts.hosts) > 0 {
		cfg.Build.Host = opts.hosts
	}
	if len(opts.targets) > 0 {
		cfg.Build.Target = opts.targets
	}
	if opts.muslRoot != "" {
		cfg.Build.MuslRoot = opts.muslRoot
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Build.Parallelism = opts.jobs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bctx, err := cfg.Context(os.Getenv)
	if err != nil {
		return err
	}
	limit, err := cfg.VersionOutputLimit()
	if err != nil {
		return err
	}

	d := &detect.Detector{
		Runner:      gcc.Runner{MaxOutput: limit},
		Parallelism: cfg.Build.Parallelism,
	}
	res, err := d.Detect(cmd.Context(), bctx)
	if err != nil {
		return err
	}

	return report.New(bctx.Build, res).Encode(cmd.OutOrStdout(), format)
}
