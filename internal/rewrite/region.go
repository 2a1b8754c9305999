package rewrite

import "regexp"

// spliceFirst replaces the first match of re in text with replacement.
// The replacement is inserted literally; "$" has no special meaning.
func spliceFirst(re *regexp.Regexp, text, replacement string) (string, bool) {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + replacement + text[loc[1]:], true
}

// spliceGroup replaces capture group n of the first match of re.
func spliceGroup(re *regexp.Regexp, n int, text, replacement string) (string, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil || loc[2*n] < 0 {
		return text, false
	}
	return text[:loc[2*n]] + replacement + text[loc[2*n+1]:], true
}
