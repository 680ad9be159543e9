// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

// defaultStopwords lists common function words excluded from title
// frequency counts. A config-supplied list replaces it entirely.
var defaultStopwords = []string{
	"the", "and", "for", "are", "with", "this", "that", "from", "they",
	"been", "have", "were", "said", "each", "which", "their", "time",
	"will", "about", "can", "may", "use", "her", "him", "his", "she",
	"was", "one", "our", "had", "but", "not", "what", "all", "any",
	"your", "how", "did", "its",
}

// Stopwords builds a lookup set from a word list. An empty list falls
// back to the built-in defaults.
func Stopwords(list []string) map[string]struct{} {
	if len(list) == 0 {
		list = defaultStopwords
	}
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}
