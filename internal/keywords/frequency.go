package keywords

import (
	"sort"
	"strings"
)

const maxFrequencyKeywords = 5

// FrequencyExtractor ranks single tokens by occurrence count. Terms from
// the educational allow-list sort ahead of everything else; ties keep
// first-seen order. There is no minimum count, so tokens occurring once
// are eligible.
type FrequencyExtractor struct {
	lists *Wordlists
}

func NewFrequencyExtractor(lists *Wordlists) *FrequencyExtractor {
	return &FrequencyExtractor{lists: lists}
}

func (e *FrequencyExtractor) Extract(bundle TextBundle) []string {
	text := strings.Join([]string{
		bundle.Title,
		bundle.Description,
		bundle.Subject,
		bundle.Content,
	}, " ")

	counts := make(map[string]int)
	var order []string
	for _, token := range Tokenize(text, e.lists.Stopwords) {
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		aEdu, bEdu := e.lists.Educational[a], e.lists.Educational[b]
		if aEdu != bEdu {
			return aEdu
		}
		return counts[a] > counts[b]
	})

	if len(order) > maxFrequencyKeywords {
		order = order[:maxFrequencyKeywords]
	}
	return order
}
