package contrast

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/twcontrast/internal/colour"
	"github.com/jmylchreest/twcontrast/internal/theme"
)

// Buckets groups colour names by lightness. Names keep palette order.
type Buckets struct {
	Light    []string `json:"light" yaml:"light"`
	Dark     []string `json:"dark" yaml:"dark"`
	Excluded []string `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// Classification is the per-colour outcome of Classify.
type Classification struct {
	Entry  theme.Entry
	Result colour.ParseResult
	HSL    colour.HSL
	Bucket colour.Bucket
}

// ClassifyEntries parses and classifies each entry in order. Unparsable
// entries are reported with colour.BucketExcluded.
func ClassifyEntries(entries theme.Entries, parser *colour.Parser, threshold float64) []Classification {
	out := make([]Classification, 0, len(entries))
	for _, e := range entries {
		res := parser.Parse(e.Raw)
		c := Classification{Entry: e, Result: res, Bucket: colour.BucketExcluded}
		if rgb, ok := res.RGB(); ok {
			c.HSL = colour.ToHSL(rgb)
			c.Bucket = colour.Classify(rgb, threshold)
		}
		out = append(out, c)
	}
	return out
}

// Classify buckets entries into light and dark groups. Colours that cannot
// be parsed are skipped and logged at debug level.
func Classify(entries theme.Entries, parser *colour.Parser, threshold float64, logger hclog.Logger) Buckets {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var b Buckets
	for _, c := range ClassifyEntries(entries, parser, threshold) {
		switch c.Bucket {
		case colour.BucketLight:
			b.Light = append(b.Light, c.Entry.Name)
		case colour.BucketDark:
			b.Dark = append(b.Dark, c.Entry.Name)
		default:
			logger.Debug("skipping unparsable colour", "name", c.Entry.Name, "value", c.Entry.Raw)
			b.Excluded = append(b.Excluded, c.Entry.Name)
			continue
		}
		logger.Trace("classified colour", "name", c.Entry.Name, "lightness", c.HSL.L, "bucket", c.Bucket)
	}
	return b
}
