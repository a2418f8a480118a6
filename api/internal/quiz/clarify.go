package quiz

import "strings"

// Пары скобок проверяются строго в этом порядке.
var bracketPairs = [...]struct{ left, right string }{
	{"[", "]"},
	{"(", ")"},
	{"{", "}"},
}

var leftBrackets = [...]string{"(", "[", "{"}

// StripClarifications removes bracketed asides from a canonical answer so the
// matcher only sees the core term. A leading bracketed span is cut out and the
// surrounding text joined with a single space; after that, anything from the
// first remaining left bracket onward is discarded. The original answer text in
// the bank is never modified — stripping happens at match time only.
func StripClarifications(text string) string {
	for _, p := range bracketPairs {
		if !strings.HasPrefix(text, p.left) {
			continue
		}
		after := text[len(p.left):]
		if _, tail, ok := strings.Cut(after, p.right); ok {
			text = " " + tail
		}
	}

	for _, l := range leftBrackets {
		if head, _, ok := strings.Cut(text, l); ok {
			text = head
		}
	}
	return strings.TrimSpace(text)
}
