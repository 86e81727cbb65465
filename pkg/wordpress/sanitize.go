package wordpress

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces rendered WordPress markup to plain text. Text nodes are
// concatenated in document order with entities decoded; tags are dropped
// without inserting or removing whitespace at their boundaries.
func StripHTML(markup string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	var text strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return text.String()
		case html.TextToken:
			text.WriteString(tokenizer.Token().Data)
		}
	}
}
