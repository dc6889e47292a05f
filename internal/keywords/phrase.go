package keywords

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxPhraseKeywords = 7
	minPrimaryTerms   = 3
)

var clauseDelimiters = regexp.MustCompile(`[.,;:!?()\[\]{}"\n]+`)

// PhraseExtractor identifies noun-phrase-like terms: maximal runs of
// non-stopword tokens inside a punctuation-delimited clause, ranked by how
// often the run repeats across the document. When fewer than three phrases
// survive the filter, it re-scans the text at single-token granularity and
// appends until seven terms are collected.
type PhraseExtractor struct {
	lists *Wordlists
}

func NewPhraseExtractor(lists *Wordlists) *PhraseExtractor {
	return &PhraseExtractor{lists: lists}
}

func (e *PhraseExtractor) Extract(bundle TextBundle) []string {
	content := joinNonEmpty(
		bundle.Title,
		bundle.Subject,
		bundle.Description,
		bundle.Summary,
		bundle.Content,
	)
	if strings.TrimSpace(content) == "" {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, clause := range clauseDelimiters.Split(content, -1) {
		for _, phrase := range e.phrasesIn(clause) {
			if counts[phrase] == 0 {
				order = append(order, phrase)
			}
			counts[phrase]++
		}
	}

	// Most frequent first; ties keep document order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	seen := make(map[string]bool, maxPhraseKeywords)
	keywords := make([]string, 0, maxPhraseKeywords)
	collect := func(term string) bool {
		term = strings.TrimSpace(strings.ToLower(term))
		if len(term) < minTermLength || e.lists.Extended[term] || seen[term] {
			return false
		}
		seen[term] = true
		keywords = append(keywords, term)
		return len(keywords) >= maxPhraseKeywords
	}

	for _, phrase := range order {
		if collect(phrase) {
			break
		}
	}

	// Sparse documents fall back to single tokens; phrase results are
	// kept and topped up, never replaced.
	if len(keywords) < minPrimaryTerms {
		for _, token := range wordPattern.FindAllString(strings.ToLower(content), -1) {
			if collect(token) {
				break
			}
		}
	}

	return keywords
}

// phrasesIn splits a clause into maximal runs of candidate tokens. A
// stopword or a token shorter than three characters ends the current run.
func (e *PhraseExtractor) phrasesIn(clause string) []string {
	var phrases []string
	var run []string
	flush := func() {
		if len(run) > 0 {
			phrases = append(phrases, strings.Join(run, " "))
			run = run[:0]
		}
	}
	for _, token := range wordPattern.FindAllString(strings.ToLower(clause), -1) {
		if len(token) < minTermLength || e.lists.Extended[token] {
			flush()
			continue
		}
		run = append(run, token)
	}
	flush()
	return phrases
}
