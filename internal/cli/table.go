package cli

import (
	"strings"
	"unicode/utf8"
)

// Table renders rows in aligned columns. Cells may carry ANSI escape
// sequences; they do not count towards column width.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleLen(cell))
		}
	}

	var b strings.Builder
	t.writeLine(&b, t.headers, widths)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	t.writeLine(&b, sep, widths)

	for _, row := range t.rows {
		t.writeLine(&b, row, widths)
	}
	return b.String()
}

func (t *Table) writeLine(b *strings.Builder, cells []string, widths []int) {
	gap := strings.Repeat(" ", t.padding)
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(cell)
		// The last column is not padded so lines carry no trailing spaces.
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-visibleLen(cell)))
		}
	}
	b.WriteString("\n")
}

// visibleLen returns the display width of s, skipping CSI escape sequences.
func visibleLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}
