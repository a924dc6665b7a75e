package contrast

// Config maps dimension names to whether their utilities are generated.
type Config map[string]bool

// DefaultConfig returns the default enabled dimensions: placeholder and
// text contrast on, background and border off.
func DefaultConfig() Config {
	return Config{
		BackgroundColor.Name():  false,
		BorderColor.Name():      false,
		PlaceholderColor.Name(): true,
		TextColor.Name():        true,
	}
}

// Enabled reports whether a dimension is switched on. Unknown and unset
// dimensions are off.
func (c Config) Enabled(d Dimension) bool {
	return c[d.Name()]
}

// Merge returns a copy of c with overrides applied on top.
func (c Config) Merge(overrides map[string]bool) Config {
	out := make(Config, len(c)+len(overrides))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// VariantResolver supplies the host's variant list for a dimension.
type VariantResolver interface {
	Variants(dimension string) []string
}

// StaticVariants is a VariantResolver backed by a fixed map.
type StaticVariants map[string][]string

// Variants returns the variants configured for dimension, or nil.
func (v StaticVariants) Variants(dimension string) []string {
	return v[dimension]
}
