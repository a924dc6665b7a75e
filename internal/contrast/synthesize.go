package contrast

import (
	"slices"
	"strings"
)

// Rule is a utility rule registration handed to the host.
type Rule struct {
	Selector     string            `json:"selector" yaml:"selector"`
	Declarations map[string]string `json:"declarations" yaml:"declarations"`
	Variants     []string          `json:"variants" yaml:"variants"`
}

// Registrar receives the utility rules generated for one dimension.
type Registrar interface {
	AddUtilities(dimension string, rules []Rule)
}

// Collector is a Registrar that keeps every registered rule in order.
type Collector struct {
	Rules []Rule
}

// AddUtilities appends rules.
func (c *Collector) AddUtilities(_ string, rules []Rule) {
	c.Rules = append(c.Rules, rules...)
}

// Synthesize registers, for each enabled dimension, a black rule for the
// light group and a white rule for the dark group. A group with no names
// produces no rule. It returns the number of rules registered.
func Synthesize(b Buckets, cfg Config, variants VariantResolver, reg Registrar) int {
	if variants == nil {
		variants = StaticVariants(nil)
	}

	count := 0
	for _, d := range Dimensions() {
		if !cfg.Enabled(d) {
			continue
		}

		dimVariants := variants.Variants(d.Name())
		if dimVariants == nil {
			dimVariants = []string{}
		}
		var rules []Rule
		if sel := joinSelectors(d, b.Light); sel != "" {
			rules = append(rules, Rule{Selector: sel, Declarations: d.Declarations(Black), Variants: slices.Clone(dimVariants)})
		}
		if sel := joinSelectors(d, b.Dark); sel != "" {
			rules = append(rules, Rule{Selector: sel, Declarations: d.Declarations(White), Variants: slices.Clone(dimVariants)})
		}
		if len(rules) == 0 {
			continue
		}

		reg.AddUtilities(d.Name(), rules)
		count += len(rules)
	}
	return count
}

func joinSelectors(d Dimension, names []string) string {
	selectors := make([]string, len(names))
	for i, name := range names {
		selectors[i] = d.Selector(name)
	}
	return strings.Join(selectors, ",")
}
