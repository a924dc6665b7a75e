package colour

import (
	"strconv"
	"strings"
)

// ParseResult is the outcome of parsing a colour string.
// The zero value is Unparsable.
type ParseResult struct {
	rgb RGB
	ok  bool
}

// Unparsable is the result for a string no strategy could resolve.
var Unparsable = ParseResult{}

// Parsed wraps a resolved colour.
func Parsed(rgb RGB) ParseResult {
	return ParseResult{rgb: rgb, ok: true}
}

// RGB returns the resolved colour and whether parsing succeeded.
func (r ParseResult) RGB() (RGB, bool) {
	return r.rgb, r.ok
}

// OK reports whether the colour was resolved.
func (r ParseResult) OK() bool {
	return r.ok
}

// String returns the resolved colour or "unparsable".
func (r ParseResult) String() string {
	if !r.ok {
		return "unparsable"
	}
	return r.rgb.String()
}

// NamedTable resolves colour names to their canonical representation.
type NamedTable interface {
	Lookup(name string) (string, bool)
}

// MapTable is a NamedTable backed by a map.
type MapTable map[string]string

// Lookup returns the value registered for name.
func (t MapTable) Lookup(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// Parser resolves raw colour strings into RGB values.
type Parser struct {
	names NamedTable
}

// NewParser creates a parser using the given named colour table.
// A nil table disables named lookup.
func NewParser(names NamedTable) *Parser {
	return &Parser{names: names}
}

// Parse resolves a colour string using the CSS named colour table.
func Parse(raw string) ParseResult {
	return NewParser(CSSNames()).Parse(raw)
}

// Parse resolves raw by trying a named lookup, then rgb()/rgba()
// notation, then hexadecimal notation. The first match wins.
func (p *Parser) Parse(raw string) ParseResult {
	s := strings.TrimSpace(raw)

	// Named colours are substituted once; the value is parsed below.
	if p.names != nil {
		if v, ok := p.names.Lookup(s); ok {
			s = strings.TrimSpace(v)
		}
	}

	if rgb, ok := parseFunctional(s); ok {
		return Parsed(rgb)
	}
	if rgb, ok := parseHex(s); ok {
		return Parsed(rgb)
	}
	return Unparsable
}

// parseFunctional parses rgb(r, g, b) and rgba(r, g, b, a).
// Three integer components are required; a fourth alpha component is
// accepted and discarded. Either prefix takes either arity.
func parseFunctional(s string) (RGB, bool) {
	var body string
	switch {
	case strings.HasPrefix(s, "rgba("):
		body = s[len("rgba("):]
	case strings.HasPrefix(s, "rgb("):
		body = s[len("rgb("):]
	default:
		return RGB{}, false
	}

	body, ok := strings.CutSuffix(body, ")")
	if !ok {
		return RGB{}, false
	}

	args := strings.Split(body, ",")
	if len(args) != 3 && len(args) != 4 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, ok := parseChannel(strings.TrimSpace(args[i]))
		if !ok {
			return RGB{}, false
		}
		channels[i] = v
	}

	if len(args) == 4 && !isAlpha(strings.TrimSpace(args[3])) {
		return RGB{}, false
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// parseChannel parses a base-10 integer in [0, 255].
func parseChannel(s string) (uint8, bool) {
	if s == "" || !allDigits(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// isAlpha accepts digits with an optional fractional part, e.g. "1", "0.5", ".5".
func isAlpha(s string) bool {
	whole, frac, hasDot := strings.Cut(s, ".")
	if !hasDot {
		return whole != "" && allDigits(whole)
	}
	if frac == "" || !allDigits(frac) {
		return false
	}
	return whole == "" || allDigits(whole)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseHex parses #RGB, #RRGGBB, RGB or RRGGBB.
func parseHex(s string) (RGB, bool) {
	hex := strings.TrimPrefix(s, "#")

	// Expand shorthand format (RGB -> RRGGBB)
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, false
	}

	var out [3]uint8
	for i := range out {
		hiNib, ok1 := hexNibble(hex[i*2])
		loNib, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		out[i] = hiNib<<4 | loNib
	}

	return RGB{R: out[0], G: out[1], B: out[2]}, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
