package ipc

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-switch/internal/switcher"
	"hypr-switch/internal/wm"
	"hypr-switch/pkg/logger"
)

type fakeWM struct {
	windows []wm.Window
	focused []string
}

func (f *fakeWM) ListWindows() ([]wm.Window, error) {
	out := make([]wm.Window, len(f.windows))
	copy(out, f.windows)
	return out, nil
}

func (f *fakeWM) ActiveWindow() (wm.Window, error) { return wm.Window{}, nil }

func (f *fakeWM) FocusWindow(w wm.Window) error {
	f.focused = append(f.focused, w.ID)
	return nil
}

func (f *fakeWM) Name() string { return "fake" }

// startTestServer runs a daemon on a throwaway socket and returns its path.
func startTestServer(t *testing.T, f *fakeWM) string {
	t.Helper()

	log, err := logger.NewLogger(
		logger.WithFile(filepath.Join(t.TempDir(), "test.log")),
		logger.WithLevel(zerolog.Disabled),
	)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	path := filepath.Join(t.TempDir(), "test.sock")
	srv, err := NewServer(switcher.New(f, log), path, log)
	require.NoError(t, err, "server should bind the test socket")
	t.Cleanup(func() { srv.Close() })

	go srv.Serve()
	return path
}

func testSendLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(
		logger.WithFile(filepath.Join(t.TempDir(), "client.log")),
		logger.WithLevel(zerolog.Disabled),
	)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func testCorpus() []wm.Window {
	return []wm.Window{
		{ID: "0x01", Class: "firefox", Title: "Mozilla Firefox"},
		{ID: "0x02", Class: "kitty"},
	}
}

func TestRoundTrip_Query(t *testing.T) {
	path := startTestServer(t, &fakeWM{windows: testCorpus()})

	resp, err := Send(Request{Command: "query", Pattern: "fire"}, path, testSendLogger(t))
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.NotEmpty(t, resp.QueryID)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "0x01", resp.Results[0].ID)
	assert.Equal(t, "firefox: Mozilla Firefox", resp.Results[0].Display)
	assert.Equal(t, 10000, resp.Results[0].Score)
}

func TestRoundTrip_Windows(t *testing.T) {
	path := startTestServer(t, &fakeWM{windows: testCorpus()})

	resp, err := Send(Request{Command: "windows"}, path, testSendLogger(t))
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Len(t, resp.Results, 2)
}

func TestRoundTrip_Activate(t *testing.T) {
	f := &fakeWM{windows: testCorpus()}
	path := startTestServer(t, f)

	resp, err := Send(Request{Command: "activate", ID: "0x02"}, path, testSendLogger(t))
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, []string{"0x02"}, f.focused)
}

func TestRoundTrip_Switch(t *testing.T) {
	f := &fakeWM{windows: testCorpus()}
	path := startTestServer(t, f)

	resp, err := Send(Request{Command: "switch", Pattern: "kitty"}, path, testSendLogger(t))
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "0x02", resp.Results[0].ID)
	assert.Equal(t, []string{"0x02"}, f.focused)
}

func TestRoundTrip_UnknownCommand(t *testing.T) {
	path := startTestServer(t, &fakeWM{windows: testCorpus()})

	resp, err := Send(Request{Command: "bogus"}, path, testSendLogger(t))
	require.NoError(t, err)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "Unknown command", resp.Message)
}

func TestAvailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nobody-home.sock")
	assert.False(t, Available(missing))

	path := startTestServer(t, &fakeWM{windows: testCorpus()})
	assert.True(t, Available(path))
}

func TestSend_NoDaemon(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nobody-home.sock")
	_, err := Send(Request{Command: "query"}, missing, testSendLogger(t))
	require.Error(t, err)
}
