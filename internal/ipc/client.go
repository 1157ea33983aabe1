package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"hypr-switch/pkg/logger"
)

const dialTimeout = 250 * time.Millisecond

// Available reports whether a daemon is listening on the socket. Callers
// fall back to in-process operation when it is not.
func Available(path string) bool {
	if path == "" {
		path = SocketPath()
	}
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Send delivers one request to the daemon and waits for its response.
// An empty path selects the default socket location.
func Send(req Request, path string, log *logger.Logger) (Response, error) {
	if path == "" {
		path = SocketPath()
	}

	log.Debug("Connecting to socket server", "path", path)
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		log.Debug("Failed to connect to socket server", "error", err)
		return Response{}, fmt.Errorf("failed to connect to daemon: %w", err)
	}
	defer conn.Close()

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		log.Error("Failed to encode request", err)
		return Response{}, err
	}
	log.Debug("Request sent", "command", req.Command)

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		log.Error("Failed to decode response", err)
		return Response{}, err
	}

	log.Debug("Response received", "status", resp.Status, "message", resp.Message)
	return resp, nil
}
