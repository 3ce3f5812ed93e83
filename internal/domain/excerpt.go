package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DescriptionFallback is used when no README paragraph qualifies as a description.
const DescriptionFallback = "Descrição não disponível."

// minDescriptionLength is exclusive: a paragraph must be longer than this.
// Length is counted in runes, so an emoji counts once.
const minDescriptionLength = 20

var (
	paragraphSeparator = regexp.MustCompile(`\r?\n\r?\n`)
	imageMarkup        = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	linkMarkup         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	markdownChars      = regexp.MustCompile("[>#*_`~\\-]")
)

// ExtractDescription returns the first README paragraph that still reads as
// prose once markdown markup is stripped. It never fails: empty or
// unusable input yields DescriptionFallback.
func ExtractDescription(readme string) string {
	if readme == "" {
		return DescriptionFallback
	}
	for _, paragraph := range paragraphSeparator.Split(readme, -1) {
		text := strings.TrimSpace(paragraph)
		if text == "" {
			continue
		}
		text = imageMarkup.ReplaceAllString(text, "")
		text = linkMarkup.ReplaceAllString(text, "$1")
		text = markdownChars.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if utf8.RuneCountInString(text) > minDescriptionLength {
			return text
		}
	}
	return DescriptionFallback
}
