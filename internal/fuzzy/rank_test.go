package fuzzy

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func corpus(displays ...string) []Candidate {
	out := make([]Candidate, len(displays))
	for i, d := range displays {
		out[i] = Candidate{ID: fmt.Sprintf("0x%02x", i), Display: d}
	}
	return out
}

func TestRank_EmptyPattern(t *testing.T) {
	got := Rank("", corpus("firefox", "chrome", "kitty"), false, 10)
	if len(got) != 0 {
		t.Fatalf("empty pattern should yield no results, got %d", len(got))
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	if got := Rank("fire", nil, false, 10); len(got) != 0 {
		t.Fatalf("empty corpus should yield no results, got %d", len(got))
	}
}

func TestRank_NonPositiveMaxResults(t *testing.T) {
	cands := corpus("firefox", "chrome")
	for _, max := range []int{0, -1} {
		if got := Rank("fire", cands, false, max); len(got) != 0 {
			t.Fatalf("maxResults=%d should yield no results, got %d", max, len(got))
		}
	}
}

func TestRank_FiltersAndSortsByScore(t *testing.T) {
	cands := corpus(
		"kitty",                // no match for "fox"
		"firefox: hacker news", // substring at offset 4
		"fox terminal",         // substring at offset 0
	)
	got := Rank("fox", cands, false, 10)
	if len(got) != 2 {
		t.Fatalf("want 2 matches, got %d", len(got))
	}
	if got[0].Display != "fox terminal" || got[1].Display != "firefox: hacker news" {
		t.Fatalf("wrong order: %q then %q", got[0].Display, got[1].Display)
	}
	if got[0].Score <= got[1].Score {
		t.Fatalf("scores not descending: %d then %d", got[0].Score, got[1].Score)
	}
}

func TestRank_TruncatesToHighestScoring(t *testing.T) {
	// 15 matching candidates with strictly decreasing scores: the pattern
	// sits at an increasing offset in each display string.
	var cands []Candidate
	for i := 0; i < 15; i++ {
		display := ""
		for j := 0; j < i; j++ {
			display += "x"
		}
		cands = append(cands, Candidate{ID: fmt.Sprintf("w%d", i), Display: display + "fox"})
	}

	got := Rank("fox", cands, false, 10)
	if len(got) != 10 {
		t.Fatalf("want exactly 10 results, got %d", len(got))
	}
	for i, r := range got {
		if r.ID != fmt.Sprintf("w%d", i) {
			t.Fatalf("result %d = %s, want w%d (the 10 highest-scoring)", i, r.ID, i)
		}
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	// All three candidates score identically (offset 0 substring); input
	// order must survive so results do not flicker between keystrokes.
	cands := corpus("foxglove", "foxtrot", "fox")
	got := Rank("fox", cands, false, 10)
	if len(got) != 3 {
		t.Fatalf("want 3 results, got %d", len(got))
	}
	for i, want := range []string{"foxglove", "foxtrot", "fox"} {
		if got[i].Display != want {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, got[i].Display, want)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	cands := corpus("firefox: docs", "chrome: mail", "kitty", "code: fuzzy.go")
	first := Rank("o", cands, false, 10)
	second := Rank("o", cands, false, 10)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical calls disagree:\n%v\n%v", first, second)
	}
}

func TestRank_ConcurrentInvocations(t *testing.T) {
	cands := corpus("firefox: docs", "chrome: mail", "kitty", "code: fuzzy.go")
	want := Rank("o", cands, false, 10)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Rank("o", cands, false, 10)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent call diverged:\n%v\n%v", got, want)
			}
		}()
	}
	wg.Wait()
}
