package corpustext

// stopwords contains common English words excluded from the vector space.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "its", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just", "not",
		"no", "nor", "only", "until", "while", "each", "all", "any",
		"both", "few", "more", "most", "other", "some", "do", "does",
		"did", "have", "has", "had", "you", "your", "they", "them",
		"their", "he", "she", "his", "her", "we", "our", "i", "my", "me",
		"what", "which", "who", "whom", "how", "when", "where", "why",
		"there", "here", "once", "should", "would", "could", "may",
		"might", "shall", "must",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the term is an English stopword.
// The vectoriser uses the same predicate so the fitted vocabulary and the
// normalised corpus text agree on what counts as a term.
func IsStopword(term string) bool {
	_, ok := stopwords[term]
	return ok
}
