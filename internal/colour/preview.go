package colour

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a truecolour swatch of c with text drawn in the
// contrast colour its bucket selects (black on light, white on dark).
func Preview(c RGB, text string, width int, threshold float64) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if Classify(c, threshold) == BucketLight {
		fg = RGB{}
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	return bg + fgSeq + fitText(text, width) + ansiReset
}

// fitText centres text in width columns, truncating when too long.
func fitText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return string([]rune(text)[:width])
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-n-padding)
}
