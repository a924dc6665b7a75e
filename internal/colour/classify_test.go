package colour

import (
	"math"
	"strings"
	"testing"
)

func TestToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "black", rgb: RGB{0, 0, 0}, want: HSL{0, 0, 0}},
		{name: "white", rgb: RGB{255, 255, 255}, want: HSL{0, 0, 100}},
		{name: "red", rgb: RGB{255, 0, 0}, want: HSL{0, 100, 50}},
		{name: "green", rgb: RGB{0, 255, 0}, want: HSL{120, 100, 50}},
		{name: "blue", rgb: RGB{0, 0, 255}, want: HSL{240, 100, 50}},
		{name: "magenta", rgb: RGB{255, 0, 255}, want: HSL{300, 100, 50}},
		{name: "grey", rgb: RGB{102, 102, 102}, want: HSL{0, 0, 40}},
		{name: "rebeccapurple", rgb: RGB{0x66, 0x33, 0x99}, want: HSL{270, 50, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSL(tt.rgb)
			if !approx(got.H, tt.want.H) || !approx(got.S, tt.want.S) || !approx(got.L, tt.want.L) {
				t.Errorf("ToHSL(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestToHSLRanges(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				hsl := ToHSL(RGB{uint8(r), uint8(g), uint8(b)})
				if hsl.H < 0 || hsl.H >= 360 {
					t.Fatalf("hue out of range for rgb(%d,%d,%d): %v", r, g, b, hsl.H)
				}
				if hsl.S < 0 || hsl.S > 100+1e-9 {
					t.Fatalf("saturation out of range for rgb(%d,%d,%d): %v", r, g, b, hsl.S)
				}
				if hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("lightness out of range for rgb(%d,%d,%d): %v", r, g, b, hsl.L)
				}
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want Bucket
	}{
		{name: "white is light", rgb: RGB{255, 255, 255}, want: BucketLight},
		{name: "black is dark", rgb: RGB{0, 0, 0}, want: BucketDark},
		{name: "boundary grey is light", rgb: RGB{102, 102, 102}, want: BucketLight},
		{name: "boundary purple is light", rgb: RGB{0x66, 0x33, 0x99}, want: BucketLight},
		{name: "boundary split channels", rgb: RGB{204, 0, 0}, want: BucketLight},
		{name: "just below boundary", rgb: RGB{101, 102, 102}, want: BucketDark},
		{name: "brand", rgb: RGB{0x1a, 0x1a, 0x1a}, want: BucketDark},
		{name: "accent", rgb: RGB{0xf5, 0xf5, 0xf5}, want: BucketLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.rgb, DefaultLightnessThreshold); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v (l=%v)", tt.rgb, got, tt.want, ToHSL(tt.rgb).L)
			}
		})
	}
}

func TestClassifyResult(t *testing.T) {
	if got := ClassifyResult(Unparsable, DefaultLightnessThreshold); got != BucketExcluded {
		t.Errorf("ClassifyResult(Unparsable) = %v, want excluded", got)
	}
	if got := ClassifyResult(Parsed(RGB{}), DefaultLightnessThreshold); got != BucketDark {
		t.Errorf("ClassifyResult(black) = %v, want dark", got)
	}
}

func TestBucketString(t *testing.T) {
	for b, want := range map[Bucket]string{
		BucketLight:    "light",
		BucketDark:     "dark",
		BucketExcluded: "excluded",
	} {
		if got := b.String(); got != want {
			t.Errorf("Bucket(%d).String() = %q, want %q", b, got, want)
		}
	}
}

func TestPreview(t *testing.T) {
	light := Preview(RGB{255, 255, 255}, "ab", 6, DefaultLightnessThreshold)
	if !strings.Contains(light, ansiFgPrefix+"0;0;0m") {
		t.Errorf("light swatch should use black text: %q", light)
	}
	if !strings.Contains(light, "  ab  ") {
		t.Errorf("light swatch should centre text: %q", light)
	}

	dark := Preview(RGB{0, 0, 0}, "toolongtext", 4, DefaultLightnessThreshold)
	if !strings.Contains(dark, ansiFgPrefix+"255;255;255m") {
		t.Errorf("dark swatch should use white text: %q", dark)
	}
	if !strings.Contains(dark, "tool"+ansiReset) {
		t.Errorf("dark swatch should truncate text: %q", dark)
	}
}

func TestFitText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"é", 3, " é "},
		{"héllo", 3, "hél"},
		{"日本語", 2, "日本"},
		{"toolong", 4, "tool"},
	}
	for _, tt := range tests {
		if got := fitText(tt.text, tt.width); got != tt.want {
			t.Errorf("fitText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestRGBFormatting(t *testing.T) {
	rgb := RGB{R: 26, G: 43, B: 60}
	if got := rgb.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %s, want #1a2b3c", got)
	}
	if got := rgb.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %s, want rgb(26, 43, 60)", got)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
