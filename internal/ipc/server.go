package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"os"

	"hypr-switch/internal/fuzzy"
	"hypr-switch/internal/switcher"
	"hypr-switch/pkg/logger"
)

// Server answers switcher commands on a unix domain socket.
type Server struct {
	sw       *switcher.Switcher
	log      *logger.Logger
	listener net.Listener
	path     string
}

// NewServer binds the socket, replacing a stale one left by a previous
// daemon. An empty path selects the default socket location.
func NewServer(sw *switcher.Switcher, path string, log *logger.Logger) (*Server, error) {
	if path == "" {
		path = SocketPath()
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Error("Failed to remove existing socket file", err, "path", path)
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to start socket server: %w", err)
	}

	log.Info("Socket server started", "path", path)
	return &Server{sw: sw, log: log, listener: listener, path: path}, nil
}

// Serve accepts connections until Close is called, handling each one on
// its own goroutine.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			// Accept fails permanently once the listener is closed.
			s.log.Debug("Socket server stopped accepting", "error", err)
			return nil
		}

		s.log.Debug("New connection accepted")
		go s.handleConnection(conn)
	}
}

// Close stops the accept loop and removes the socket file.
func (s *Server) Close() error {
	err := s.listener.Close()
	if rmErr := os.Remove(s.path); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	var req Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		s.log.Error("Failed to decode request", err)
		return
	}

	s.log.Info("Received request", "command", req.Command)
	resp := s.handle(req)

	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		s.log.Error("Failed to encode response", err)
	} else {
		s.log.Debug("Response sent successfully", "status", resp.Status)
	}
}

// handle dispatches one request against the switcher.
func (s *Server) handle(req Request) Response {
	switch req.Command {
	case "query":
		queryID, results, err := s.sw.Query(req.Pattern)
		if err != nil {
			s.log.Error("Query failed", err, "query_id", queryID)
			return Response{Status: StatusError, Message: err.Error(), QueryID: queryID}
		}
		return Response{
			Status:  StatusSuccess,
			Message: fmt.Sprintf("%d windows match", len(results)),
			QueryID: queryID,
			Results: toEntries(results),
		}

	case "windows":
		candidates, err := s.sw.Candidates()
		if err != nil {
			s.log.Error("Window enumeration failed", err)
			return Response{Status: StatusError, Message: err.Error()}
		}
		entries := make([]ResultEntry, 0, len(candidates))
		for _, c := range candidates {
			entries = append(entries, ResultEntry{ID: c.ID, Display: c.Display})
		}
		return Response{
			Status:  StatusSuccess,
			Message: fmt.Sprintf("%d windows open", len(entries)),
			Results: entries,
		}

	case "activate":
		if err := s.sw.Activate(req.ID); err != nil {
			s.log.Error("Activation failed", err, "id", req.ID)
			return Response{Status: StatusError, Message: err.Error()}
		}
		return Response{Status: StatusSuccess, Message: "Window activated"}

	case "switch":
		w, err := s.sw.SwitchTo(req.Pattern)
		if err != nil {
			s.log.Error("Switch failed", err, "pattern", req.Pattern)
			return Response{Status: StatusError, Message: err.Error()}
		}
		return Response{
			Status:  StatusSuccess,
			Message: fmt.Sprintf("Switched to %s", w.Class),
			Results: []ResultEntry{{ID: w.ID, Display: switcher.DisplayText(w)}},
		}

	default:
		s.log.Error("Unknown command received", fmt.Errorf("command: %s", req.Command))
		return Response{Status: StatusError, Message: "Unknown command"}
	}
}

func toEntries(results []fuzzy.Ranked) []ResultEntry {
	entries := make([]ResultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, ResultEntry{ID: r.ID, Display: r.Display, Score: r.Score})
	}
	return entries
}
