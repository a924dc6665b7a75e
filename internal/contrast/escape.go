package contrast

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeClass escapes a colour name for use inside a class selector.
// Names are always embedded after a prefix such as "text-", so a leading
// digit needs no escaping. Bytes that are not valid UTF-8 are written as
// hex escapes of their byte value.
func EscapeClass(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, "\\%x ", name[i])
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}
