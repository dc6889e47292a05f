package keywords

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Tokenize lowercases text and returns every maximal word run that is at
// least three characters long and not in stop. No stemming is applied;
// stopword matching is exact.
func Tokenize(text string, stop map[string]bool) []string {
	var tokens []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) < minTermLength || stop[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
