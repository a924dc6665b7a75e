// Package config loads the host theme configuration consumed by the
// contrast generator.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/twcontrast/internal/colour"
	"github.com/jmylchreest/twcontrast/internal/contrast"
	"github.com/jmylchreest/twcontrast/internal/theme"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// TWCONTRAST_THEME_CONTRASTS_TEXTCOLOR=false.
const EnvPrefix = "TWCONTRAST"

// Config is the resolved theme configuration.
type Config struct {
	Colours   *theme.Tree
	Contrasts contrast.Config
	Variants  contrast.StaticVariants
	Threshold float64
}

// New returns a viper instance with defaults and environment overrides
// registered. Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	for name, enabled := range contrast.DefaultConfig() {
		v.SetDefault("theme.contrasts."+name, enabled)
	}
	v.SetDefault("threshold", colour.DefaultLightnessThreshold)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadFile reads a YAML or JSON theme file and resolves it with defaults
// and environment overrides.
func LoadFile(path string) (*Config, error) {
	return LoadFileWith(New(), path)
}

// LoadFileWith is LoadFile using a caller-supplied viper instance.
func LoadFileWith(v *viper.Viper, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified theme file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(v, data, configType(path))
}

// Load resolves configuration from raw YAML or JSON bytes.
func Load(v *viper.Viper, data []byte, format string) (*Config, error) {
	if format == "" {
		format = "yaml"
	}
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", format, err)
	}

	// Viper lowercases keys, so the colour tree is decoded separately to
	// keep key case and document order.
	colours, err := decodeColours(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Colours:   colours,
		Contrasts: make(contrast.Config),
		Variants:  make(contrast.StaticVariants),
		Threshold: v.GetFloat64("threshold"),
	}

	for _, d := range contrast.Dimensions() {
		cfg.Contrasts[d.Name()] = v.GetBool("theme.contrasts." + d.Name())
		if key := "variants." + d.Name(); v.IsSet(key) {
			cfg.Variants[d.Name()] = v.GetStringSlice(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %g", c.Threshold)
	}
	return nil
}

// decodeColours extracts theme.colors from the document as an ordered tree.
func decodeColours(data []byte) (*theme.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse colours: %w", err)
	}

	root, err := theme.FromNode(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse colours: %w", err)
	}

	th, ok := root.Lookup("theme")
	if !ok {
		return theme.Branch(), nil
	}
	colours, ok := th.Lookup("colors")
	if !ok || colours.IsLeaf() {
		return theme.Branch(), nil
	}
	return colours, nil
}

// configType maps a file extension to a viper config type.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
