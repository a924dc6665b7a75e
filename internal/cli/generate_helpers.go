package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/twcontrast/internal/colour"
	"github.com/jmylchreest/twcontrast/internal/config"
	"github.com/jmylchreest/twcontrast/internal/contrast"
)

// themeFlags are the configuration overrides shared by generate and classify.
type themeFlags struct {
	threshold float64
	contrasts map[string]string
	variants  []string
}

func (f *themeFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.threshold, "threshold", colour.DefaultLightnessThreshold, "HSL lightness (0-100) at or above which a colour is light")
	fs.StringToStringVar(&f.contrasts, "contrast", nil, "enable or disable a dimension (e.g. backgroundColor=true)")
	fs.StringArrayVar(&f.variants, "variant", nil, "variants for a dimension (e.g. textColor=hover,focus), repeatable")
}

// loadTheme reads the theme file and applies flag overrides on top of
// file values and environment overrides.
func (f *themeFlags) loadTheme(cmd *cobra.Command, path string) (*config.Config, error) {
	v := config.New()
	if err := v.BindPFlag("threshold", cmd.Flags().Lookup("threshold")); err != nil {
		return nil, fmt.Errorf("failed to bind threshold flag: %w", err)
	}

	cfg, err := config.LoadFileWith(v, path)
	if err != nil {
		return nil, err
	}

	overrides, err := parseContrastFlags(f.contrasts)
	if err != nil {
		return nil, err
	}
	cfg.Contrasts = cfg.Contrasts.Merge(overrides)

	variants, err := parseVariantFlags(f.variants)
	if err != nil {
		return nil, err
	}
	for name, list := range variants {
		cfg.Variants[name] = list
	}

	return cfg, nil
}

// parseContrastFlags validates dimension names and boolean values.
func parseContrastFlags(raw map[string]string) (map[string]bool, error) {
	out := make(map[string]bool, len(raw))
	for name, value := range raw {
		if _, ok := contrast.DimensionByName(name); !ok {
			return nil, fmt.Errorf("unknown contrast dimension: %s (valid: %s)", name, dimensionNames())
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		out[name] = enabled
	}
	return out, nil
}

// parseVariantFlags parses "dimension=v1,v2" pairs. An empty list clears
// the dimension's variants.
func parseVariantFlags(raw []string) (map[string][]string, error) {
	out := make(map[string][]string, len(raw))
	for _, pair := range raw {
		name, list, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid variant %q (expected dimension=variant[,variant])", pair)
		}
		name = strings.TrimSpace(name)
		if _, ok := contrast.DimensionByName(name); !ok {
			return nil, fmt.Errorf("unknown contrast dimension: %s (valid: %s)", name, dimensionNames())
		}

		variants := []string{}
		for _, v := range strings.Split(list, ",") {
			if v = strings.TrimSpace(v); v != "" {
				variants = append(variants, v)
			}
		}
		out[name] = variants
	}
	return out, nil
}

func dimensionNames() string {
	dims := contrast.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name()
	}
	return strings.Join(names, ", ")
}

// formatRules encodes rule registrations for output.
func formatRules(rules []contrast.Rule, format string) ([]byte, error) {
	if rules == nil {
		rules = []contrast.Rule{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(rules)
		if err != nil {
			return nil, fmt.Errorf("failed to convert to YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - generated output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
