package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"hypr-switch/pkg/logger"
)

type Hyprland struct {
	log *logger.Logger
}

func NewHyprland(log *logger.Logger) (*Hyprland, error) {
	// Check if hyprctl is available
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{log: log}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

// hyprClient mirrors the fields of `hyprctl clients -j` output we care about.
type hyprClient struct {
	Address   string `json:"address"`
	Mapped    bool   `json:"mapped"`
	Class     string `json:"class"`
	Title     string `json:"title"`
	Workspace struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"workspace"`
}

func (h *Hyprland) ListWindows() ([]Window, error) {
	output, err := exec.Command("hyprctl", "clients", "-j").CombinedOutput()
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "output", string(output))
		return nil, fmt.Errorf("hyprctl error: %w", err)
	}

	active, err := h.activeAddress()
	if err != nil {
		h.log.Warn("Could not determine active window", "error", err)
	}

	windows, err := parseClients(output, active)
	if err != nil {
		h.log.Error("Failed to parse hyprctl output", err, "output", string(output))
		return nil, fmt.Errorf("failed to parse hyprctl output: %w", err)
	}

	h.log.Debug("Enumerated windows", "count", len(windows))
	return windows, nil
}

func (h *Hyprland) ActiveWindow() (Window, error) {
	output, err := exec.Command("hyprctl", "activewindow", "-j").CombinedOutput()
	if err != nil {
		return Window{}, fmt.Errorf("hyprctl error: %w", err)
	}
	return parseActiveWindow(output)
}

func (h *Hyprland) FocusWindow(w Window) error {
	h.log.Debug("Focusing window", "address", w.ID, "class", w.Class)

	cmd := exec.Command("hyprctl", "dispatch", "focuswindow", "address:"+w.ID)
	if output, err := cmd.CombinedOutput(); err != nil {
		h.log.Error("Failed to focus window", err, "output", string(output))
		return fmt.Errorf("failed to focus window: %w", err)
	}
	return nil
}

// activeAddress returns the address of the focused client, or "" when no
// client holds focus (hyprctl then prints an empty object or nothing).
func (h *Hyprland) activeAddress() (string, error) {
	w, err := h.ActiveWindow()
	if err != nil {
		return "", err
	}
	return w.ID, nil
}

// parseClients converts raw `hyprctl clients -j` output into Windows,
// dropping unmapped clients and clients parked on special workspaces.
func parseClients(data []byte, activeAddress string) ([]Window, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var clients []hyprClient
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, c := range clients {
		if !c.Mapped {
			continue
		}
		// Special workspaces (scratchpads) carry negative ids.
		if c.Workspace.ID < 0 || strings.HasPrefix(c.Workspace.Name, "special") {
			continue
		}
		windows = append(windows, Window{
			ID:        c.Address,
			Class:     c.Class,
			Title:     c.Title,
			Workspace: c.Workspace.Name,
			Focused:   c.Address != "" && c.Address == activeAddress,
		})
	}
	return windows, nil
}

// parseActiveWindow parses `hyprctl activewindow -j` output. With no focused
// client hyprctl prints an empty object, which maps to the zero Window.
func parseActiveWindow(data []byte) (Window, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "{}" || strings.HasPrefix(trimmed, "Invalid") {
		return Window{}, nil
	}

	var c hyprClient
	if err := json.Unmarshal(data, &c); err != nil {
		return Window{}, err
	}
	if c.Address == "" {
		return Window{}, nil
	}
	return Window{
		ID:        c.Address,
		Class:     c.Class,
		Title:     c.Title,
		Workspace: c.Workspace.Name,
		Focused:   true,
	}, nil
}
