// Package switcher ties the matching engine to the window manager: it
// holds a time-boxed snapshot of the open windows, builds their display
// strings, ranks them against user queries and focuses the chosen one.
package switcher

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hypr-switch/internal/fuzzy"
	"hypr-switch/internal/wm"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/logger"
)

// Switcher runs queries against a cached window snapshot.
type Switcher struct {
	wm  wm.WindowManager
	log *logger.Logger

	// mu guards the snapshot and, because Reconfigure can rewrite them
	// while the daemon serves requests, the option fields as well.
	mu            sync.RWMutex
	caseSensitive bool
	maxResults    int
	ttl           time.Duration
	skipFocused   bool
	ignoreClasses map[string]struct{}
	snapshot      []wm.Window
	takenAt       time.Time
}

type Option func(*Switcher)

// WithCaseSensitive toggles case-sensitive matching.
func WithCaseSensitive(v bool) Option {
	return func(s *Switcher) { s.caseSensitive = v }
}

// WithMaxResults bounds the result list of one-shot queries.
func WithMaxResults(n int) Option {
	return func(s *Switcher) { s.maxResults = n }
}

// WithTTL sets how long a window snapshot stays fresh. Zero means every
// call re-enumerates.
func WithTTL(d time.Duration) Option {
	return func(s *Switcher) { s.ttl = d }
}

// WithSkipFocused controls whether the focused window is dropped from the
// corpus. Switching to the window already holding focus is never useful.
func WithSkipFocused(v bool) Option {
	return func(s *Switcher) { s.skipFocused = v }
}

// WithIgnoreClasses drops windows of the given classes (bars, docks,
// notification daemons) from the corpus. Comparison is case-folded.
func WithIgnoreClasses(classes []string) Option {
	return func(s *Switcher) {
		s.ignoreClasses = make(map[string]struct{}, len(classes))
		for _, c := range classes {
			s.ignoreClasses[strings.ToLower(c)] = struct{}{}
		}
	}
}

// FromConfig maps the live configuration onto switcher options.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithCaseSensitive(cfg.GetCaseSensitive()),
		WithMaxResults(cfg.GetMaxResults()),
		WithTTL(cfg.GetCacheTTL()),
		WithSkipFocused(cfg.GetSkipFocused()),
		WithIgnoreClasses(cfg.GetIgnoreClasses()),
	}
}

// New creates a switcher over the given window manager. Defaults match the
// default configuration: insensitive matching, 10 results, 2s snapshot TTL,
// focused window skipped.
func New(manager wm.WindowManager, log *logger.Logger, opts ...Option) *Switcher {
	s := &Switcher{
		wm:          manager,
		log:         log,
		maxResults:  10,
		ttl:         2 * time.Second,
		skipFocused: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reconfigure re-applies configuration-derived options and drops the
// snapshot so new filters take effect on the next query. The daemon calls
// this after a config hot reload.
func (s *Switcher) Reconfigure(cfg *config.Config) {
	opts := FromConfig(cfg)
	s.mu.Lock()
	for _, opt := range opts {
		opt(s)
	}
	s.snapshot = nil
	s.takenAt = time.Time{}
	s.mu.Unlock()
	s.log.Info("Switcher reconfigured")
}

// DisplayText builds the string the matcher sees for a window: the class
// alone when the window has no title, otherwise "class: title".
func DisplayText(w wm.Window) string {
	if w.Title == "" {
		return w.Class
	}
	return w.Class + ": " + w.Title
}

// Windows returns the current snapshot, re-enumerating when the cached one
// has expired.
func (s *Switcher) Windows() ([]wm.Window, error) {
	s.mu.RLock()
	fresh := !s.takenAt.IsZero() && time.Since(s.takenAt) <= s.ttl
	cached := s.snapshot
	s.mu.RUnlock()

	if fresh {
		return cached, nil
	}
	return s.refresh()
}

// Invalidate discards the cached snapshot so the next call re-enumerates.
func (s *Switcher) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.takenAt = time.Time{}
	s.mu.Unlock()
}

// Candidates returns the snapshot as matcher candidates.
func (s *Switcher) Candidates() ([]fuzzy.Candidate, error) {
	windows, err := s.Windows()
	if err != nil {
		return nil, err
	}
	candidates := make([]fuzzy.Candidate, 0, len(windows))
	for _, w := range windows {
		candidates = append(candidates, fuzzy.Candidate{ID: w.ID, Display: DisplayText(w)})
	}
	return candidates, nil
}

// Query ranks the current corpus against pattern. The returned id tags the
// invocation in logs and IPC responses.
func (s *Switcher) Query(pattern string) (string, []fuzzy.Ranked, error) {
	queryID := uuid.NewString()
	start := time.Now()

	candidates, err := s.Candidates()
	if err != nil {
		s.log.Error("Query failed to build candidates", err, "query_id", queryID)
		return queryID, nil, err
	}

	s.mu.RLock()
	caseSensitive, maxResults := s.caseSensitive, s.maxResults
	s.mu.RUnlock()

	results := fuzzy.Rank(pattern, candidates, caseSensitive, maxResults)

	s.log.Debug("Query ranked",
		"query_id", queryID,
		"pattern", pattern,
		"corpus_size", len(candidates),
		"matches", len(results),
		"elapsed", time.Since(start).String())
	return queryID, results, nil
}

// Activate focuses the window with the given id. A stale snapshot is
// refreshed once before giving up.
func (s *Switcher) Activate(id string) error {
	w, ok := s.lookup(id)
	if !ok {
		if _, err := s.refresh(); err != nil {
			return err
		}
		if w, ok = s.lookup(id); !ok {
			return fmt.Errorf("window %s is gone", id)
		}
	}

	s.log.Info("Activating window", "id", w.ID, "class", w.Class)
	if err := s.wm.FocusWindow(w); err != nil {
		return fmt.Errorf("failed to activate window %s: %w", id, err)
	}

	// The focused window changed; a cached snapshot would misreport it.
	s.Invalidate()
	return nil
}

// SwitchTo ranks pattern and focuses the best match.
func (s *Switcher) SwitchTo(pattern string) (wm.Window, error) {
	queryID, results, err := s.Query(pattern)
	if err != nil {
		return wm.Window{}, err
	}
	if len(results) == 0 {
		return wm.Window{}, fmt.Errorf("no window matches %q", pattern)
	}

	top := results[0]
	w, ok := s.lookup(top.ID)
	if !ok {
		return wm.Window{}, fmt.Errorf("window %s is gone", top.ID)
	}

	s.log.Info("Switching to best match",
		"query_id", queryID,
		"pattern", pattern,
		"class", w.Class,
		"score", top.Score)
	if err := s.Activate(top.ID); err != nil {
		return wm.Window{}, err
	}
	return w, nil
}

// refresh re-enumerates the windows and rebuilds the snapshot, applying the
// class and focus filters.
func (s *Switcher) refresh() ([]wm.Window, error) {
	windows, err := s.wm.ListWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	s.mu.RLock()
	ignoreClasses, skipFocused := s.ignoreClasses, s.skipFocused
	s.mu.RUnlock()

	filtered := make([]wm.Window, 0, len(windows))
	for _, w := range windows {
		if _, ignored := ignoreClasses[strings.ToLower(w.Class)]; ignored {
			continue
		}
		if skipFocused && w.Focused {
			continue
		}
		filtered = append(filtered, w)
	}

	s.mu.Lock()
	s.snapshot = filtered
	s.takenAt = time.Now()
	s.mu.Unlock()

	s.log.Debug("Window snapshot refreshed",
		"enumerated", len(windows),
		"kept", len(filtered))
	return filtered, nil
}

// lookup finds a window by id in the cached snapshot.
func (s *Switcher) lookup(id string) (wm.Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.snapshot {
		if w.ID == id {
			return w, true
		}
	}
	return wm.Window{}, false
}
