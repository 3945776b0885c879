package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uhallgren/ccdetect/pkg/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbosity int
		colorMode string
	)

	root := &cobra.Command{
		Use:           "ccdetect",
		Short:         "Resolve the native C/C++ compilers and archivers of a build",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetVerbosity(verbosity)
			return setColor(colorMode)
		},
	}

	root.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity (1 prints resolved tools, 2 prints quirk decisions)")
	root.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newDetectCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func setColor(mode string) error {
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q, want auto, on or off", mode)
	}
	return nil
}
