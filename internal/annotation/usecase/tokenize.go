package usecase

import (
	"regexp"
	"strings"
	"unicode"
)

var sentenceSplitter = regexp.MustCompile(`[.!?\n]+`)

// tokenize lower-cases text and splits it on anything that is not a letter or digit.
func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "'", ""))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func splitSentences(text string) []string {
	parts := sentenceSplitter.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
