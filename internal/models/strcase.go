package models

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var kebabCase = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsKebabCase reports whether s is lowercase alphanumerics joined by single hyphens.
func IsKebabCase(s string) bool {
	return kebabCase.MatchString(s)
}

// ValidateTextDomain rejects anything that is not kebab-case.
func ValidateTextDomain(s string) error {
	if !IsKebabCase(s) {
		return &ValidationError{
			Field:  FieldTextDomain,
			Value:  s,
			Reason: "must be in kebab-case (e.g., my-awesome-plugin)",
		}
	}
	return nil
}

// SlugToTitle turns "acme-tools" into "Acme Tools".
func SlugToTitle(slug string) string {
	return strings.Join(titleWords(slug), " ")
}

// SlugToPascalCase turns "acme-tools" into "AcmeTools".
func SlugToPascalCase(slug string) string {
	return strings.Join(titleWords(slug), "")
}

// titleWords uppercases the first rune of each segment. A segment that
// starts with a digit is left untouched, so "2fa" stays "2fa".
func titleWords(slug string) []string {
	caser := cases.Title(language.Und, cases.NoLower)
	words := strings.Split(slug, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if !unicode.IsLetter(r) {
			continue
		}
		words[i] = caser.String(w[:size]) + w[size:]
	}
	return words
}
