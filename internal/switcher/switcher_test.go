package switcher

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-switch/internal/wm"
	"hypr-switch/pkg/logger"
)

// fakeWM is an in-memory WindowManager recording focus calls.
type fakeWM struct {
	windows   []wm.Window
	listCalls int
	listErr   error
	focused   []string
}

func (f *fakeWM) ListWindows() ([]wm.Window, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]wm.Window, len(f.windows))
	copy(out, f.windows)
	return out, nil
}

func (f *fakeWM) ActiveWindow() (wm.Window, error) {
	for _, w := range f.windows {
		if w.Focused {
			return w, nil
		}
	}
	return wm.Window{}, nil
}

func (f *fakeWM) FocusWindow(w wm.Window) error {
	f.focused = append(f.focused, w.ID)
	return nil
}

func (f *fakeWM) Name() string { return "fake" }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(
		logger.WithFile(filepath.Join(t.TempDir(), "test.log")),
		logger.WithLevel(zerolog.Disabled),
	)
	require.NoError(t, err, "test logger should initialize")
	t.Cleanup(func() { log.Close() })
	return log
}

func testWindows() []wm.Window {
	return []wm.Window{
		{ID: "0x01", Class: "firefox", Title: "Mozilla Firefox"},
		{ID: "0x02", Class: "kitty", Title: ""},
		{ID: "0x03", Class: "Code", Title: "fuzzy.go", Focused: true},
		{ID: "0x04", Class: "Polybar", Title: "polybar-main"},
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name   string
		window wm.Window
		want   string
	}{
		{"class and title", wm.Window{Class: "firefox", Title: "Mozilla Firefox"}, "firefox: Mozilla Firefox"},
		{"no title", wm.Window{Class: "kitty"}, "kitty"},
		{"title only separator when present", wm.Window{Class: "Code", Title: "a: b"}, "Code: a: b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayText(tt.window))
		})
	}
}

func TestWindows_SkipsFocusedByDefault(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	windows, err := s.Windows()
	require.NoError(t, err)

	for _, w := range windows {
		assert.NotEqual(t, "0x03", w.ID, "focused window should be filtered out")
	}
	assert.Len(t, windows, 3)
}

func TestWindows_KeepFocused(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t), WithSkipFocused(false))

	windows, err := s.Windows()
	require.NoError(t, err)
	assert.Len(t, windows, 4)
}

func TestWindows_IgnoreClasses(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t), WithIgnoreClasses([]string{"polybar"}))

	windows, err := s.Windows()
	require.NoError(t, err)

	for _, w := range windows {
		assert.NotEqual(t, "Polybar", w.Class, "ignored class should be filtered out even with different case")
	}
}

func TestWindows_SnapshotTTL(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t), WithTTL(time.Hour))

	_, err := s.Windows()
	require.NoError(t, err)
	_, err = s.Windows()
	require.NoError(t, err)
	assert.Equal(t, 1, f.listCalls, "fresh snapshot should not re-enumerate")

	s.Invalidate()
	_, err = s.Windows()
	require.NoError(t, err)
	assert.Equal(t, 2, f.listCalls, "invalidation should force re-enumeration")
}

func TestWindows_ZeroTTLAlwaysRefreshes(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t), WithTTL(0))

	for i := 0; i < 3; i++ {
		_, err := s.Windows()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.listCalls)
}

func TestQuery_RanksCandidates(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	queryID, results, err := s.Query("fire")
	require.NoError(t, err)
	assert.NotEmpty(t, queryID)
	require.Len(t, results, 1)
	assert.Equal(t, "0x01", results[0].ID)
	assert.Equal(t, "firefox: Mozilla Firefox", results[0].Display)
}

func TestQuery_EmptyPattern(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	_, results, err := s.Query("")
	require.NoError(t, err)
	assert.Empty(t, results, "empty pattern yields no results")
}

func TestQuery_RespectsMaxResults(t *testing.T) {
	var windows []wm.Window
	for i := 0; i < 15; i++ {
		windows = append(windows, wm.Window{
			ID:    fmt.Sprintf("0x%02d", i),
			Class: "term",
			Title: fmt.Sprintf("shell %d", i),
		})
	}
	f := &fakeWM{windows: windows}
	s := New(f, testLogger(t), WithMaxResults(10))

	_, results, err := s.Query("term")
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestQuery_CaseSensitive(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t), WithCaseSensitive(true), WithSkipFocused(false))

	_, results, err := s.Query("code")
	require.NoError(t, err)
	assert.Empty(t, results, "wrong case should not match in sensitive mode")

	_, results, err = s.Query("Code")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "0x03", results[0].ID)
}

func TestActivate(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	_, err := s.Windows()
	require.NoError(t, err)

	require.NoError(t, s.Activate("0x01"))
	assert.Equal(t, []string{"0x01"}, f.focused)
}

func TestActivate_RefreshesForUnknownID(t *testing.T) {
	f := &fakeWM{windows: testWindows()[:1]}
	s := New(f, testLogger(t), WithTTL(time.Hour))

	_, err := s.Windows()
	require.NoError(t, err)

	// Window appears after the snapshot was taken.
	f.windows = append(f.windows, wm.Window{ID: "0x09", Class: "mpv"})
	require.NoError(t, s.Activate("0x09"))
	assert.Equal(t, []string{"0x09"}, f.focused)
}

func TestActivate_GoneWindow(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	err := s.Activate("0xdead")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
	assert.Empty(t, f.focused)
}

func TestSwitchTo(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	w, err := s.SwitchTo("kitty")
	require.NoError(t, err)
	assert.Equal(t, "0x02", w.ID)
	assert.Equal(t, []string{"0x02"}, f.focused)
}

func TestSwitchTo_NoMatch(t *testing.T) {
	f := &fakeWM{windows: testWindows()}
	s := New(f, testLogger(t))

	_, err := s.SwitchTo("zzz")
	require.Error(t, err)
	assert.Empty(t, f.focused)
}

func TestQuery_EnumerationError(t *testing.T) {
	f := &fakeWM{listErr: fmt.Errorf("compositor went away")}
	s := New(f, testLogger(t))

	_, _, err := s.Query("fire")
	require.Error(t, err)
}
