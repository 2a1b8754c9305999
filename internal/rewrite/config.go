package rewrite

import (
	"regexp"
	"strings"
)

var (
	configBlockStart = regexp.MustCompile(`module\.exports\s*=\s*\{`)

	// <property name="text_domain" ...> <!-- ... --> <element value="...
	textDomainPropertyPattern = regexp.MustCompile(
		`(<property name="text_domain"[^>]*>\s*<!--.*?-->\s*<element value=")([^"]*)("/>)`,
	)
)

// ReplaceConfigBlock swaps the module.exports assignment for block.
func ReplaceConfigBlock(text, block string) (string, bool) {
	start, end, ok := configBlockBounds(text)
	if !ok {
		return text, false
	}
	return text[:start] + block + text[end:], true
}

// ReplaceTextDomainProperty sets the value attribute of the text_domain
// element in a phpcs ruleset.
func ReplaceTextDomainProperty(text, textDomain string) (string, bool) {
	return spliceGroup(textDomainPropertyPattern, 2, text, textDomain)
}

// FindConfigBlock returns the module.exports assignment in text.
func FindConfigBlock(text string) (string, bool) {
	start, end, ok := configBlockBounds(text)
	if !ok {
		return "", false
	}
	return text[start:end], true
}

// configBlockBounds locates "module.exports = { ... };". The closing brace
// is found by scanning past string literals and comments, so a value
// containing "};" does not end the block early.
func configBlockBounds(text string) (int, int, bool) {
	loc := configBlockStart.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}

	closing, ok := matchingBrace(text, loc[1])
	if !ok {
		return 0, 0, false
	}

	rest := text[closing+1:]
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, ";") {
		return 0, 0, false
	}
	end := closing + 1 + (len(rest) - len(trimmed)) + 1

	return loc[0], end, true
}

// matchingBrace returns the offset of the "}" closing the object whose
// body starts at pos.
func matchingBrace(text string, pos int) (int, bool) {
	depth := 1
	for i := pos; i < len(text); i++ {
		switch c := text[i]; c {
		case '\'', '"', '`':
			end, ok := skipString(text, i)
			if !ok {
				return 0, false
			}
			i = end
		case '/':
			if i+1 >= len(text) {
				continue
			}
			switch text[i+1] {
			case '/':
				nl := strings.IndexByte(text[i:], '\n')
				if nl < 0 {
					return 0, false
				}
				i += nl
			case '*':
				end := strings.Index(text[i+2:], "*/")
				if end < 0 {
					return 0, false
				}
				i += end + 3
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// skipString returns the offset of the quote closing the literal at pos.
func skipString(text string, pos int) (int, bool) {
	quote := text[pos]
	for i := pos + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i, true
		case '\n':
			if quote != '`' {
				return 0, false
			}
		}
	}
	return 0, false
}
