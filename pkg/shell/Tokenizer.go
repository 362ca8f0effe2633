package shell

import "strings"

// Tokenize splits a command line into argument tokens. Whitespace separates
// tokens except inside a quoted region; both quote characters open a region
// that runs verbatim until the same character recurs, so the other quote
// character is literal inside it. A region left open at end of input is
// closed implicitly. Quoted and unquoted spans glued together without
// whitespace form one token, and a token that ends up empty (quotes only)
// is not emitted. Backslashes carry no special meaning.
func Tokenize(line string) []string {
	tokens := make([]string, 0)

	var builder strings.Builder
	var quote rune

	flush := func() {
		if builder.Len() > 0 {
			tokens = append(tokens, builder.String())
			builder.Reset()
		}
	}

	for _, c := range line {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				builder.WriteRune(c)
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		default:
			builder.WriteRune(c)
		}
	}

	flush()

	return tokens
}
