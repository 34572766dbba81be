package templates

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperRunRegex    = regexp.MustCompile(`([A-Z]+)`)
	underscoresRegex = regexp.MustCompile(`_+`)
)

// PascalCase splits s on '-' and '_', capitalizes each segment and joins them.
// Capitalizing lowercases the rest of a segment, so "my_API" becomes "MyApi".
func PascalCase(s string) string {
	parts := strings.Split(strings.ReplaceAll(s, "-", "_"), "_")
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(capitalize(p))
	}
	return sb.String()
}

// SnakeCase inserts '_' before runs of uppercase letters, lowercases the
// result, turns '-' into '_', collapses repeated '_' and trims the ends.
func SnakeCase(s string) string {
	s = upperRunRegex.ReplaceAllString(s, "_${1}")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = underscoresRegex.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// KebabCase is SnakeCase with '-' separators.
func KebabCase(s string) string {
	return strings.ReplaceAll(SnakeCase(s), "_", "-")
}

// TitleCase replaces '_' and '-' with spaces and title-cases every word.
// A word is a run of letters, so a digit or an apostrophe starts a new
// one: "o'neil_app2x" becomes "O'Neil App2X".
func TitleCase(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	// A Caser keeps state, so each call gets its own.
	caser := cases.Title(language.English)

	var sb strings.Builder
	word := make([]rune, 0, len(s))
	flush := func() {
		if len(word) > 0 {
			sb.WriteString(caser.String(string(word)))
			word = word[:0]
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			word = append(word, r)
			continue
		}
		flush()
		sb.WriteRune(r)
	}
	flush()
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
