package colour

// DefaultLightnessThreshold is the HSL lightness at or above which a
// colour is considered light.
const DefaultLightnessThreshold = 40.0

// Bucket is the lightness group a colour falls into.
type Bucket int

const (
	// BucketExcluded marks a colour that could not be parsed.
	BucketExcluded Bucket = iota
	// BucketLight marks a colour that takes black as its contrast colour.
	BucketLight
	// BucketDark marks a colour that takes white as its contrast colour.
	BucketDark
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketLight:
		return "light"
	case BucketDark:
		return "dark"
	default:
		return "excluded"
	}
}

// Classify places an RGB colour into the light or dark bucket.
// The threshold is inclusive: a lightness equal to it is light.
func Classify(rgb RGB, threshold float64) Bucket {
	if ToHSL(rgb).L >= threshold {
		return BucketLight
	}
	return BucketDark
}

// ClassifyResult classifies a parse result, excluding unparsable colours.
func ClassifyResult(res ParseResult, threshold float64) Bucket {
	rgb, ok := res.RGB()
	if !ok {
		return BucketExcluded
	}
	return Classify(rgb, threshold)
}
