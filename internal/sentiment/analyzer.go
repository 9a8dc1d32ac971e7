// Package sentiment implements a lexicon and rule based sentiment classifier
// for feedback comments. Scoring follows the VADER approach: word valences
// adjusted for negation and intensity, summed and normalized into a polarity
// score in [-1, 1]. Classification is a pure function of the input text, so
// results are memoized in a bounded LRU cache.
package sentiment

import (
	"math"
	"strings"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/metrics"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

const (
	// Symmetric-wide threshold policy: polarity in [-0.2, 0.2] inclusive of
	// the boundaries classifies Neutral.
	positiveThreshold = 0.2
	negativeThreshold = -0.2

	// negationDampening flips and dampens a valence within negationScope
	// tokens of a negator.
	negationDampening = -0.74
	negationScope     = 3

	// exclamationEmphasis is added per trailing "!" (capped) with the sign
	// of the running total.
	exclamationEmphasis = 0.292
	maxExclamations     = 4

	// normalizationAlpha controls how quickly the summed valence saturates
	// toward -1/+1.
	normalizationAlpha = 15.0
)

// Analyzer classifies free-text comments into sentiment labels.
// It is safe for concurrent use.
type Analyzer struct {
	cache *lruCache
}

// NewAnalyzer creates an Analyzer whose memoization cache holds at most
// cacheSize entries. A cacheSize of zero disables memoization.
func NewAnalyzer(cacheSize int) *Analyzer {
	a := &Analyzer{}
	if cacheSize > 0 {
		a.cache = newLRUCache(cacheSize)
	}
	return a
}

// Classify returns the sentiment label for text. Same input always yields
// the same label. The caller is expected to have length-validated text.
func (a *Analyzer) Classify(text string) types.Sentiment {
	if a.cache != nil {
		if label, ok := a.cache.get(text); ok {
			metrics.ClassifierCacheHits.Inc()
			return label
		}
		metrics.ClassifierCacheMisses.Inc()
	}

	label := Label(Polarity(text))
	if a.cache != nil {
		a.cache.add(text, label)
	}
	return label
}

// Label maps a polarity score to a sentiment label using the symmetric-wide
// policy. Both boundaries are non-inclusive: exactly ±0.2 is Neutral.
func Label(polarity float64) types.Sentiment {
	switch {
	case polarity > positiveThreshold:
		return types.SentimentPositive
	case polarity < negativeThreshold:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

// Polarity computes the normalized polarity score of text in [-1, 1].
// Zero means no scored vocabulary was found or positive and negative
// contributions cancelled out.
func Polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	for i, token := range tokens {
		valence, ok := lexicon[token]
		if !ok {
			continue
		}

		// Intensity boost from the immediately preceding token.
		if i > 0 {
			if boost, ok := boosters[tokens[i-1]]; ok {
				if valence < 0 {
					valence -= boost
				} else {
					valence += boost
				}
			}
		}

		// Negation within the preceding scope flips and dampens.
		for j := i - 1; j >= 0 && j >= i-negationScope; j-- {
			if negators[tokens[j]] {
				valence *= negationDampening
				break
			}
		}

		sum += valence
	}

	if sum != 0 {
		emphasis := float64(min(strings.Count(text, "!"), maxExclamations)) * exclamationEmphasis
		if sum < 0 {
			sum -= emphasis
		} else {
			sum += emphasis
		}
	}

	return normalize(sum)
}

// normalize maps an unbounded valence sum into [-1, 1].
func normalize(sum float64) float64 {
	norm := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if norm > 1 {
		return 1
	}
	if norm < -1 {
		return -1
	}
	return norm
}

// tokenize lowercases text and splits it into words, stripping punctuation.
// Apostrophes are dropped so "don't" matches the "dont" negator entry.
func tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	var current strings.Builder
	for _, r := range lower {
		switch {
		case ('a' <= r && r <= 'z') || ('0' <= r && r <= '9'):
			current.WriteRune(r)
		case r == '\'' || r == '’':
			// drop apostrophes, keep the word together
		default:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
