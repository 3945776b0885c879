package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version   = "0.1.0-dev"
	gitCommit = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ccdetect version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ccdetect %s\n", color.New(color.FgGreen, color.Bold).Sprint(version))
			if gitCommit != "" {
				fmt.Fprintf(out, "commit %s\n", gitCommit)
			}
		},
	}
}
