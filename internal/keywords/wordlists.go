package keywords

// Wordlists holds the fixed word sets both extractors filter and rank
// against. Build once at startup and inject; never mutate afterwards.
type Wordlists struct {
	// Stopwords are the function words dropped by the frequency path.
	Stopwords map[string]bool
	// Extended merges the common-word list with note-domain filler words
	// and backs the phrase path.
	Extended map[string]bool
	// Educational terms rank ahead of everything else in the frequency path.
	Educational map[string]bool
}

// DefaultWordlists returns the built-in English word sets.
func DefaultWordlists() *Wordlists {
	extended := make(map[string]bool, len(commonWords)+len(fillerWords))
	for _, w := range commonWords {
		extended[w] = true
	}
	for _, w := range fillerWords {
		extended[w] = true
	}

	return &Wordlists{
		Stopwords:   makeSet(functionWords),
		Extended:    extended,
		Educational: makeSet(educationalTerms),
	}
}

func makeSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// functionWords are the common English function words excluded from the
// frequency ranking.
var functionWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "can", "this", "that", "these", "those",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
	"us", "them", "my", "your", "his", "its", "our", "their",
}

// commonWords approximates the hundred most common English words. The
// phrase path treats them as phrase boundaries and filters them from the
// final keyword list.
var commonWords = []string{
	"a", "about", "after", "all", "also", "an", "and", "any", "are", "as",
	"at", "back", "be", "because", "been", "being", "but", "by", "can",
	"come", "could", "day", "did", "do", "does", "down", "even", "first",
	"for", "from", "get", "give", "go", "good", "had", "has", "have", "he",
	"her", "here", "him", "his", "how", "i", "if", "in", "into", "is", "it",
	"its", "just", "know", "like", "little", "long", "look", "make", "man",
	"many", "may", "me", "more", "most", "much", "my", "new", "no", "not",
	"now", "of", "off", "old", "on", "one", "only", "or", "other", "our",
	"out", "over", "own", "people", "said", "say", "see", "she", "short",
	"so", "some", "take", "than", "that", "the", "their", "them", "then",
	"there", "these", "they", "think", "this", "those", "time", "to", "two",
	"up", "us", "use", "very", "want", "was", "way", "we", "well", "were",
	"what", "when", "which", "who", "will", "with", "would", "year", "you",
	"your",
}

// fillerWords carry no topical meaning in the note-sharing domain.
var fillerWords = []string{
	"note", "notes", "title", "description", "summary", "text", "etc",
	"thing", "things", "stuff", "page", "file", "document", "user",
	"author", "upload", "download", "read", "write", "show", "set",
	"data", "info", "information", "content", "subject", "topic",
	"keywords", "keyword",
}

// educationalTerms is the allow-list of study-related terms the frequency
// ranker promotes. Multi-word entries never match single tokens but stay
// for parity with the phrase vocabulary.
var educationalTerms = []string{
	"tutorial", "lecture", "course", "lesson", "explanation", "guide",
	"introduction", "basics", "fundamentals", "advanced", "concepts",
	"examples", "practice", "exercises", "problems", "solutions",
	"theory", "principles", "methods", "techniques", "algorithms",
	"data structures", "programming", "mathematics", "physics",
	"chemistry", "biology", "engineering", "computer science",
}
