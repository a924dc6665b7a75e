// Package cli provides the command-line interface for twcontrast.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/twcontrast/internal/version"
)

// rootOptions holds global flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	quiet   bool
	logger  hclog.Logger
}

// NewRootCmd builds the twcontrast command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "twcontrast",
		Short: "Generate black/white contrast utilities for a colour palette",
		Long: `twcontrast reads a Tailwind-style theme, classifies every palette colour as
light or dark by HSL lightness, and emits utility rules that put black on
light colours and white on dark ones.

Generated utilities follow the pattern .text-<colour>-contrast,
.bg-<colour>-contrast, .border-<colour>-contrast and
.placeholder-<colour>-contrast::placeholder.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newClassifyCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
