package usecase

import (
	"sort"
	"unicode/utf8"

	"analytics-srv/internal/annotation"
)

const (
	businessTermWeight = 1.5
	edgeSentenceWeight = 1.3
)

// extractKeywords ranks tokens by frequency, boosting business terms and tokens of the first or last sentence.
func extractKeywords(tokens []string, sentences []string) []string {
	freq := make(map[string]int)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < annotation.MinKeywordLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		freq[tok]++
	}
	if len(freq) == 0 {
		return []string{}
	}

	edge := edgeTokens(sentences)

	type ranked struct {
		term  string
		score float64
	}
	items := make([]ranked, 0, len(freq))
	for term, n := range freq {
		score := float64(n)
		if _, ok := businessTerms[term]; ok {
			score *= businessTermWeight
		}
		if _, ok := edge[term]; ok {
			score *= edgeSentenceWeight
		}
		items = append(items, ranked{term: term, score: score})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].term < items[j].term
	})

	limit := min(len(items), annotation.MaxKeywords)
	keywords := make([]string, 0, limit)
	for _, it := range items[:limit] {
		keywords = append(keywords, it.term)
	}
	return keywords
}

func edgeTokens(sentences []string) map[string]struct{} {
	edge := make(map[string]struct{})
	if len(sentences) == 0 {
		return edge
	}
	for _, tok := range tokenize(sentences[0]) {
		edge[tok] = struct{}{}
	}
	for _, tok := range tokenize(sentences[len(sentences)-1]) {
		edge[tok] = struct{}{}
	}
	return edge
}

// extractTopics returns the taxonomy topics with at least one matching token, in taxonomy order.
func extractTopics(tokens []string) []string {
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if topic, ok := topicIndex[tok]; ok {
			seen[topic] = struct{}{}
		}
	}

	topics := make([]string, 0, len(seen))
	for _, topic := range annotation.Taxonomy {
		if _, ok := seen[topic]; ok {
			topics = append(topics, topic)
		}
	}
	return topics
}
