package sanitizer

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// CleanText prepares a remote text field for display as plain text.
// Input without markup is only trimmed; anything containing '<' goes through StripTags.
//
// Examples:
//   - "  sunt aut facere  " -> "sunt aut facere"
//   - "<p>quia et <b>suscipit</b></p>" -> "quia et suscipit"
func CleanText(input string) string {
	input = strings.TrimSpace(input)
	if !strings.Contains(input, "<") {
		return input
	}
	return StripTags(input)
}

// StripTags removes every HTML/XML tag and keeps only text nodes.
// It is a content cleanup helper, not an XSS filter.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
