// internal/command/parser.go
package command

import (
	"strings"
	"unicode"
)

// Parse splits raw message text into a command token and its arguments.
// The command is everything up to the first whitespace run; the rest is
// split on whitespace. Purely lexical, never fails.
func Parse(text string) (string, []string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, nil
	}
	return text[:i], strings.Fields(text[i:])
}
