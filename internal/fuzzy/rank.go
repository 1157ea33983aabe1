package fuzzy

import "sort"

// Candidate is one matchable item: an opaque identifier (window address or
// X11 id) paired with the display text built by the window layer.
type Candidate struct {
	ID      string
	Display string
}

// Ranked is a candidate that matched the query, with its score attached.
type Ranked struct {
	Candidate
	Score int
}

// Rank matches pattern against every candidate's display text, keeps the
// matches, and returns them sorted by score descending, truncated to at
// most maxResults entries.
//
// An empty pattern yields an empty list: no query means no results, even
// though Match itself would accept every candidate. maxResults <= 0 also
// yields an empty list. The sort is stable, so candidates with equal scores
// keep the order in which they were supplied; that order reflects the
// window manager's enumeration and must not flicker between keystrokes.
func Rank(pattern string, candidates []Candidate, caseSensitive bool, maxResults int) []Ranked {
	if pattern == "" || maxResults <= 0 {
		return nil
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		res := Match(pattern, c.Display, caseSensitive)
		if res.Matched {
			ranked = append(ranked, Ranked{Candidate: c, Score: res.Score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
