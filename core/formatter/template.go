package formatter

import (
	"strconv"
	"strings"
)

// render fills {n} placeholders in pattern with args[n].
//
// Tracker templates follow the MessageFormat conventions they were first written
// for: text between single quotes is literal and '' stands for one quote.
// Placeholders without a matching argument, placeholders with a format type
// such as {0,number}, and an unterminated brace are copied through unchanged.
func render(pattern string, args ...string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	quoted := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			quoted = !quoted
		case quoted || c != '{':
			b.WriteByte(c)
		default:
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				b.WriteString(pattern[i:])
				return b.String()
			}
			placeholder := pattern[i : i+end+2]
			n, err := strconv.Atoi(strings.TrimSpace(pattern[i+1 : i+1+end]))
			if err != nil || n < 0 || n >= len(args) {
				b.WriteString(placeholder)
			} else {
				b.WriteString(args[n])
			}
			i += end + 1
		}
	}
	return b.String()
}
