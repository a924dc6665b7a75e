package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/twcontrast/internal/colour"
	"github.com/jmylchreest/twcontrast/internal/contrast"
	"github.com/jmylchreest/twcontrast/internal/theme"
)

type parseOptions struct {
	threshold float64
	format    string
	preview   bool
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <colour>...",
		Short: "Parse colour strings and show their contrast bucket",
		Long: `Parse one or more colour strings (CSS names, rgb()/rgba(), or hex) and show
the resolved value, HSL lightness and whether black or white text suits them.

Examples:
  twcontrast parse '#1a1a1a' 'rgba(1, 2, 3, 0.5)' rebeccapurple
  twcontrast parse --format json white`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preview") {
				opts.preview = isTerminal(cmd.OutOrStdout())
			}

			entries := make(theme.Entries, len(args))
			for i, arg := range args {
				entries[i] = theme.Entry{Name: arg, Raw: arg}
			}

			parser := colour.NewParser(colour.CSSNames())
			rows := classifyRows(contrast.ClassifyEntries(entries, parser, opts.threshold))
			for _, r := range rows {
				if !r.ok {
					root.logger.Warn("unparsable colour", "value", r.Value)
				}
			}

			out, err := formatClassification(rows, opts.format, opts.preview, opts.threshold)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().Float64Var(&opts.threshold, "threshold", colour.DefaultLightnessThreshold, "HSL lightness (0-100) at or above which a colour is light")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches (default: on for terminals)")

	return cmd
}
