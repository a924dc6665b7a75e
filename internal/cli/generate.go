package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/twcontrast/internal/contrast"
)

type generateOptions struct {
	theme  themeFlags
	format string
	output string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <theme-file>",
		Short: "Generate contrast utility rules from a theme file",
		Long: `Generate black/white contrast utility rules for every colour in a theme.

The theme file is YAML or JSON. Colours are read from theme.colors (nested
keys are joined with "-"), enabled dimensions from theme.contrasts and
per-dimension variants from variants. Environment variables prefixed with
TWCONTRAST_ override file values; flags override both.

Examples:
  # Print rules as JSON
  twcontrast generate theme.yaml

  # Enable background utilities with hover variants, write YAML
  twcontrast generate theme.yaml \
    --contrast backgroundColor=true \
    --variant backgroundColor=hover,focus \
    --format yaml --output contrast.yaml

  # Treat colours at 50% lightness or above as light
  twcontrast generate --threshold 50 theme.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args[0])
		},
	}

	opts.theme.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, path string) error {
	cfg, err := opts.theme.loadTheme(cmd, path)
	if err != nil {
		return err
	}

	gen := contrast.NewBuilder().
		WithConfig(cfg.Contrasts).
		WithVariants(cfg.Variants).
		WithThreshold(cfg.Threshold).
		WithLogger(root.logger.Named("generate")).
		Build()

	var collector contrast.Collector
	res := gen.Generate(cfg.Colours, &collector)

	if n := len(res.Buckets.Excluded); n > 0 {
		root.logger.Warn("skipped unparsable colours", "count", n, "names", res.Buckets.Excluded)
	}

	data, err := formatRules(collector.Rules, opts.format)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}

	root.logger.Debug("generated utilities", "rules", res.Rules, "output", opts.output)
	return nil
}
