// Package ipc carries switcher commands between a hotkey-invoked client
// and the long-running daemon over a unix domain socket, as JSON
// request/response pairs.
package ipc

import (
	"os"
	"path/filepath"
)

const socketName = "hypr-switch.sock"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is one command sent to the daemon. Pattern carries the query for
// "query" and "switch"; ID carries the window id for "activate".
type Request struct {
	Command string `json:"command"`
	Pattern string `json:"pattern,omitempty"`
	ID      string `json:"id,omitempty"`
}

// ResultEntry is one ranked window in a query response.
type ResultEntry struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Score   int    `json:"score"`
}

// Response is the daemon's answer to a request.
type Response struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	QueryID string        `json:"query_id,omitempty"`
	Results []ResultEntry `json:"results,omitempty"`
}

// SocketPath returns the daemon socket location: the user's runtime dir
// when available, /tmp otherwise.
func SocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	return filepath.Join(os.TempDir(), socketName)
}
