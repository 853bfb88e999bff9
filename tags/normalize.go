package tags

import (
	"strings"
	"unicode"
)

// Normalizer maps raw tag spellings to canonical keys using an injected
// alias dictionary. NewNormalizer(nil) uses the builtin table.
type Normalizer struct {
	dict *Dictionary
}

func NewNormalizer(dict *Dictionary) *Normalizer {
	if dict == nil {
		dict = NewDictionary()
	}

	return &Normalizer{dict: dict}
}

// Dictionary returns the alias dictionary the normalizer was built with.
func (n *Normalizer) Dictionary() *Dictionary {
	return n.dict
}

// Key returns the canonical grouping key of a raw tag: trimmed, lowercased,
// stripped of characters outside letters, digits, space, hyphen, ampersand
// and parentheses, and resolved against the alias dictionary. Empty or
// whitespace-only input yields the empty string. The key is an internal
// identity, never a display value.
func (n *Normalizer) Key(raw string) string {
	sanitized := sanitize(raw)
	if sanitized == "" {
		return ""
	}

	if canonical, ok := n.dict.Resolve(sanitized); ok {
		return canonical
	}

	if n.dict.tokenFallback {
		if token := firstToken(sanitized); token != "" && token != sanitized {
			if canonical, ok := n.dict.Resolve(token); ok {
				return canonical
			}
		}
	}

	return sanitized
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize is Key on a normalizer carrying the builtin dictionary.
func Normalize(raw string) string {
	return defaultNormalizer.Key(raw)
}

func sanitize(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '&' || r == '(' || r == ')':
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// firstToken returns the leading run of letters and digits.
func firstToken(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	if end < 0 {
		return s
	}

	return s[:end]
}
