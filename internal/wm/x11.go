package wm

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"hypr-switch/pkg/logger"
)

type X11 struct {
	log *logger.Logger
}

func NewX11(log *logger.Logger) (*X11, error) {
	// wmctrl enumerates id, class and title in one call; xdotool handles
	// focus queries and activation.
	for _, tool := range []string{"wmctrl", "xdotool"} {
		if _, err := exec.LookPath(tool); err != nil {
			return nil, fmt.Errorf("%s is required for X11 support but was not found: %w", tool, err)
		}
	}
	return &X11{log: log}, nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) ListWindows() ([]Window, error) {
	output, err := exec.Command("wmctrl", "-lx").CombinedOutput()
	if err != nil {
		x.log.Error("Failed to execute wmctrl", err, "output", string(output))
		return nil, fmt.Errorf("wmctrl error: %w", err)
	}

	activeID := x.activeWindowID()

	var windows []Window
	for _, line := range strings.Split(string(output), "\n") {
		w, ok := parseClientLine(line)
		if !ok {
			continue
		}
		w.Focused = activeID != 0 && windowIDEquals(w.ID, activeID)
		windows = append(windows, w)
	}

	x.log.Debug("Enumerated windows", "count", len(windows))
	return windows, nil
}

func (x *X11) ActiveWindow() (Window, error) {
	activeID := x.activeWindowID()
	if activeID == 0 {
		return Window{}, nil
	}

	windows, err := x.ListWindows()
	if err != nil {
		return Window{}, err
	}
	for _, w := range windows {
		if w.Focused {
			return w, nil
		}
	}
	return Window{}, nil
}

func (x *X11) FocusWindow(w Window) error {
	if w.ID == "" {
		return fmt.Errorf("cannot focus window: no window ID provided")
	}

	// xdotool wants a decimal id; wmctrl reports hex.
	id, err := strconv.ParseUint(w.ID, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid window id %q: %w", w.ID, err)
	}

	x.log.Debug("Focusing window", "id", w.ID, "class", w.Class)
	if err := exec.Command("xdotool", "windowactivate", strconv.FormatUint(id, 10)).Run(); err != nil {
		return fmt.Errorf("failed to focus window: %w", err)
	}
	return nil
}

// activeWindowID returns the focused window's id, or 0 when focus cannot be
// determined (no focused window, or xdotool failed).
func (x *X11) activeWindowID() uint64 {
	out, err := exec.Command("xdotool", "getactivewindow").Output()
	if err != nil {
		return 0
	}
	id, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// parseClientLine parses one `wmctrl -lx` line:
//
//	0x03a00007  0 firefox.Firefox       host Mozilla Firefox
//
// Columns are id, desktop, WM_CLASS (instance.Class), hostname, then the
// title with its original spacing. Sticky/dock windows report desktop -1
// and are dropped.
func parseClientLine(line string) (Window, bool) {
	cols := splitColumns(line, 5)
	if len(cols) < 4 {
		return Window{}, false
	}

	if cols[1] == "-1" {
		return Window{}, false
	}

	class := cols[2]
	if dot := strings.LastIndex(class, "."); dot >= 0 {
		class = class[dot+1:]
	}

	title := ""
	if len(cols) == 5 {
		title = cols[4]
	}

	return Window{
		ID:        cols[0],
		Class:     class,
		Title:     title,
		Workspace: cols[1],
	}, true
}

// splitColumns splits line on runs of whitespace into at most n fields,
// keeping the remainder of the line intact in the final field.
func splitColumns(line string, n int) []string {
	var cols []string
	rest := strings.TrimSpace(line)
	for len(cols) < n-1 && rest != "" {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			cols = append(cols, rest)
			rest = ""
			break
		}
		cols = append(cols, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	if rest != "" {
		cols = append(cols, rest)
	}
	return cols
}

// windowIDEquals compares a wmctrl hex id against a numeric xdotool id.
func windowIDEquals(hexID string, id uint64) bool {
	parsed, err := strconv.ParseUint(hexID, 0, 64)
	if err != nil {
		return false
	}
	return parsed == id
}
