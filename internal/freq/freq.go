// Package freq builds word-frequency tables over whole documents.
package freq

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/wordheat/internal/token"
)

// Table maps a lowercased word to its occurrence count across the whole
// input. A word that never occurs has no entry; callers must distinguish a
// missing entry from a zero count.
type Table map[string]int

// Count tokenizes all of content and tallies each token case-folded.
// Every entry in the result has a count of at least 1.
func Count(content string) Table {
	t := make(Table)
	for _, w := range token.Tokenize(content) {
		t[strings.ToLower(w)]++
	}
	return t
}

// Lookup returns the count for the lowercased form of word. ok reports
// whether the word has an entry at all.
func (t Table) Lookup(word string) (count int, ok bool) {
	count, ok = t[strings.ToLower(word)]
	return count, ok
}

// WordCount pairs a word with its count for ranked summaries.
type WordCount struct {
	Word  string
	Count int
}

// Top returns the n most frequent words, ordered by descending count then
// ascending word for ties. n <= 0 returns all entries.
func (t Table) Top(n int) []WordCount {
	out := make([]WordCount, 0, len(t))
	for w, c := range t {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Word < out[j].Word
		}
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
