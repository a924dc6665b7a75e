package contrast

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/twcontrast/internal/colour"
	"github.com/jmylchreest/twcontrast/internal/theme"
)

// Generator runs the extract, classify and synthesize pipeline.
type Generator struct {
	parser    *colour.Parser
	config    Config
	threshold float64
	variants  VariantResolver
	logger    hclog.Logger
}

// Builder provides a fluent interface for constructing a Generator.
type Builder struct {
	g Generator
}

// NewBuilder creates a Generator builder with default settings: CSS named
// colours, the default dimension config, a lightness threshold of 40 and
// no variants.
func NewBuilder() *Builder {
	return &Builder{g: Generator{
		parser:    colour.NewParser(colour.CSSNames()),
		config:    DefaultConfig(),
		threshold: colour.DefaultLightnessThreshold,
		variants:  StaticVariants(nil),
		logger:    hclog.NewNullLogger(),
	}}
}

// WithParser sets the colour parser.
func (b *Builder) WithParser(p *colour.Parser) *Builder {
	if p != nil {
		b.g.parser = p
	}
	return b
}

// WithConfig sets which dimensions are enabled.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.g.config = cfg
	return b
}

// WithThreshold sets the lightness threshold.
func (b *Builder) WithThreshold(threshold float64) *Builder {
	b.g.threshold = threshold
	return b
}

// WithVariants sets the variant resolver.
func (b *Builder) WithVariants(v VariantResolver) *Builder {
	if v != nil {
		b.g.variants = v
	}
	return b
}

// WithLogger sets the logger.
func (b *Builder) WithLogger(l hclog.Logger) *Builder {
	if l != nil {
		b.g.logger = l
	}
	return b
}

// Build returns the configured Generator.
func (b *Builder) Build() *Generator {
	g := b.g
	return &g
}

// Result summarises a generation pass.
type Result struct {
	Entries theme.Entries
	Buckets Buckets
	Rules   int
}

// Generate flattens colours, classifies them and registers the contrast
// utilities with reg.
func (g *Generator) Generate(colours *theme.Tree, reg Registrar) Result {
	entries := theme.Extract(colours)
	g.logger.Debug("extracted colours", "count", len(entries))

	buckets := Classify(entries, g.parser, g.threshold, g.logger)
	g.logger.Debug("classified colours",
		"light", len(buckets.Light),
		"dark", len(buckets.Dark),
		"excluded", len(buckets.Excluded))

	rules := Synthesize(buckets, g.config, g.variants, reg)
	g.logger.Debug("registered utilities", "rules", rules)

	return Result{Entries: entries, Buckets: buckets, Rules: rules}
}

// Threshold returns the lightness threshold in use.
func (g *Generator) Threshold() float64 {
	return g.threshold
}

// Parser returns the colour parser in use.
func (g *Generator) Parser() *colour.Parser {
	return g.parser
}
