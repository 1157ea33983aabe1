// Package fuzzy implements the matching and ranking engine behind the
// switcher. Scoring is deliberately simple and deterministic: a typed
// pattern is compared against a window's display text through three
// prioritized strategies, and the resulting score orders candidates
// within a single query. Scores are not comparable across queries.
package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// Score bases for the three match tiers. A substring hit anywhere in the
// text beats any word-level hit, which beats any consecutive-run hit.
const (
	substringBase  = 10000
	wordPrefixBase = 5000
	wordInnerBase  = 3000
	runBase        = 1000

	wordIndexPenalty = 100
	runBonus         = 10
)

// Result is the outcome of matching one pattern against one text.
// A non-match always carries a zero score.
type Result struct {
	Matched bool
	Score   int
}

// Match reports whether pattern matches text and how relevant the match is.
// Unless caseSensitive is set, both strings are lowercased before comparison.
//
// The empty pattern matches everything with score zero. Otherwise the tiers
// are tried in order and the first one that applies wins:
//
//  1. text contains pattern as a contiguous substring:
//     score = 10000 - offset of the first occurrence (in runes).
//  2. some whitespace-separated word of text starts with pattern
//     (score = 5000 - 100*wordIndex) or contains it
//     (score = 3000 - 100*wordIndex), scanning words left to right with
//     the prefix rule checked before the substring rule on each word.
//  3. all pattern characters appear consecutively inside a single word:
//     score = 1000 + 10*len(pattern) (in runes).
//
// Match is a pure function and safe for concurrent use.
func Match(pattern, text string, caseSensitive bool) Result {
	if pattern == "" {
		return Result{Matched: true, Score: 0}
	}

	if !caseSensitive {
		pattern = strings.ToLower(pattern)
		text = strings.ToLower(text)
	}

	if idx := strings.Index(text, pattern); idx >= 0 {
		pos := utf8.RuneCountInString(text[:idx])
		return Result{Matched: true, Score: substringBase - pos}
	}

	words := strings.Fields(text)

	if score, ok := matchWords(pattern, words); ok {
		return Result{Matched: true, Score: score}
	}

	want := []rune(pattern)
	for _, word := range words {
		if hasConsecutiveRun(word, want) {
			return Result{Matched: true, Score: runBase + len(want)*runBonus}
		}
	}

	return Result{}
}

// matchWords is the word tier: iterate words in order, prefix rule before
// substring rule on each word, first hit ends the search. An inner match on
// an earlier word therefore wins over a prefix match on a later one.
func matchWords(pattern string, words []string) (int, bool) {
	for i, word := range words {
		if strings.HasPrefix(word, pattern) {
			return wordPrefixBase - i*wordIndexPenalty, true
		}
		if strings.Contains(word, pattern) {
			return wordInnerBase - i*wordIndexPenalty, true
		}
	}
	return 0, false
}

// hasConsecutiveRun reports whether every rune of want appears as one
// unbroken run inside word. The scan keeps a count of pattern runes matched
// so far; any mismatch discards the partial run and matching restarts from
// the pattern head against the following characters only. Runs never span
// word boundaries because the caller feeds single words.
func hasConsecutiveRun(word string, want []rune) bool {
	matched := 0
	for _, r := range word {
		if r == want[matched] {
			matched++
			if matched == len(want) {
				return true
			}
		} else {
			matched = 0
		}
	}
	return false
}
