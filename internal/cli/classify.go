package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/twcontrast/internal/colour"
	"github.com/jmylchreest/twcontrast/internal/contrast"
	"github.com/jmylchreest/twcontrast/internal/theme"
)

type classifyOptions struct {
	theme   themeFlags
	format  string
	preview bool
}

// classifyRow is the per-colour report written by classify and parse.
type classifyRow struct {
	Name      string  `json:"name" yaml:"name"`
	Value     string  `json:"value" yaml:"value"`
	Hex       string  `json:"hex,omitempty" yaml:"hex,omitempty"`
	Lightness float64 `json:"lightness" yaml:"lightness"`
	Bucket    string  `json:"bucket" yaml:"bucket"`

	rgb colour.RGB
	ok  bool
}

func newClassifyCmd(root *rootOptions) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <theme-file>",
		Short: "Show how each theme colour is classified",
		Long: `Show the parsed value, HSL lightness and light/dark bucket for every colour
in a theme file. Colours that cannot be parsed are listed as excluded.

Examples:
  # Table with colour swatches (when writing to a terminal)
  twcontrast classify theme.yaml

  # Machine-readable output
  twcontrast classify --format json theme.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preview") {
				opts.preview = isTerminal(cmd.OutOrStdout())
			}
			return runClassify(cmd, root, opts, args[0])
		},
	}

	opts.theme.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches (default: on for terminals)")

	return cmd
}

func runClassify(cmd *cobra.Command, root *rootOptions, opts *classifyOptions, path string) error {
	cfg, err := opts.theme.loadTheme(cmd, path)
	if err != nil {
		return err
	}

	entries := theme.Extract(cfg.Colours)
	root.logger.Debug("extracted colours", "count", len(entries))

	parser := colour.NewParser(colour.CSSNames())
	rows := classifyRows(contrast.ClassifyEntries(entries, parser, cfg.Threshold))

	out, err := formatClassification(rows, opts.format, opts.preview, cfg.Threshold)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func classifyRows(results []contrast.Classification) []classifyRow {
	rows := make([]classifyRow, 0, len(results))
	for _, c := range results {
		row := classifyRow{Name: c.Entry.Name, Value: c.Entry.Raw, Bucket: c.Bucket.String()}
		if rgb, ok := c.Result.RGB(); ok {
			row.Hex = rgb.Hex()
			row.Lightness = c.HSL.L
			row.rgb, row.ok = rgb, true
		}
		rows = append(rows, row)
	}
	return rows
}

// formatClassification renders rows as a table, JSON or YAML.
func formatClassification(rows []classifyRow, format string, preview bool, threshold float64) (string, error) {
	switch format {
	case "table", "":
		return renderClassification(rows, preview, threshold), nil
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return "", fmt.Errorf("failed to convert to YAML: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", format)
	}
}

func renderClassification(rows []classifyRow, preview bool, threshold float64) string {
	headers := []string{"NAME", "VALUE", "HEX", "LIGHTNESS", "BUCKET"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	table := NewTable(headers...)

	for _, r := range rows {
		hex, lightness := "-", "-"
		if r.ok {
			hex = r.Hex
			lightness = fmt.Sprintf("%.1f", r.Lightness)
		}

		cells := []string{r.Name, r.Value, hex, lightness, bucketLabel(r.Bucket, preview)}
		if preview {
			swatch := ""
			if r.ok {
				swatch = colour.Preview(r.rgb, "Aa", 8, threshold)
			}
			cells = append(cells, swatch)
		}
		table.AddRow(cells...)
	}
	return table.Render()
}

// bucketLabel colours the bucket name when styling is on.
func bucketLabel(bucket string, styled bool) string {
	if !styled {
		return bucket
	}

	var c *color.Color
	switch bucket {
	case colour.BucketLight.String():
		c = color.New(color.FgHiWhite, color.Bold)
	case colour.BucketDark.String():
		c = color.New(color.FgHiBlack, color.Bold)
	default:
		c = color.New(color.FgRed)
	}
	c.EnableColor()
	return c.Sprint(bucket)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
