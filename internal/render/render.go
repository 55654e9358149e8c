// Package render classifies word frequencies into color buckets and renders
// colorized terminal lines.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/KaramelBytes/wordheat/internal/freq"
	"github.com/KaramelBytes/wordheat/internal/token"
)

// Bucket classifies a word's whole-document frequency for display.
type Bucket int

const (
	// Rare marks words that occur exactly once.
	Rare Bucket = iota
	// Common marks words that occur two to five times.
	Common
	// Frequent marks words that occur more than five times. It is also the
	// fallback for words with no table entry at all.
	Frequent
)

func (b Bucket) String() string {
	switch b {
	case Rare:
		return "rare"
	case Common:
		return "common"
	default:
		return "frequent"
	}
}

// DefaultMaxLines is how many leading lines of the input are rendered.
const DefaultMaxLines = 15

// The bucket to color mapping (Rare blue, Common green, Frequent red) is a
// stable contract; tests compare against these escape sequences.
var bucketColors = map[Bucket]*color.Color{
	Rare:     color.New(color.FgBlue),
	Common:   color.New(color.FgGreen),
	Frequent: color.New(color.FgRed),
}

// Classify maps a frequency lookup to a bucket. ok is false when the word
// has no table entry; that case, and any count outside the Rare/Common
// ranges, falls through to Frequent rather than erroring.
func Classify(count int, ok bool) Bucket {
	switch {
	case ok && count == 1:
		return Rare
	case ok && count >= 2 && count <= 5:
		return Common
	default:
		return Frequent
	}
}

// ColorizeWord wraps word in the ANSI color for bucket b, preserving its
// original case.
func ColorizeWord(word string, b Bucket) string {
	return bucketColors[b].Sprint(word)
}

// Word classifies and colorizes a single original-case word against t. The
// lookup is done on the lowercased form.
func Word(word string, t freq.Table) string {
	c, ok := t.Lookup(word)
	return ColorizeWord(word, Classify(c, ok))
}

// Lines renders the first max lines of content against t. Each returned
// element is one output line: the line's tokens colorized by bucket, joined
// with single spaces, plus exactly one trailing space. A trailing newline in
// content yields a final empty line. Lines past the limit are never
// tokenized.
func Lines(content string, t freq.Table, max int) []string {
	if max <= 0 {
		max = DefaultMaxLines
	}
	lines := strings.Split(content, "\n")
	if len(lines) > max {
		lines = lines[:max]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		words := token.Tokenize(line)
		colored := make([]string, len(words))
		for j, w := range words {
			colored[j] = Word(w, t)
		}
		out[i] = strings.Join(colored, " ") + " "
	}
	return out
}
