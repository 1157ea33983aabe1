// Package rofi presents the window list in a rofi dmenu and reports the
// selected row, for setups that prefer rofi over the built-in picker.
package rofi

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"hypr-switch/pkg/logger"
)

var baseArgs = []string{
	"-dmenu",
	"-i",
	"-format", "i",
	"-kb-accept-entry", "Return",
}

// Menu runs rofi selections over entry lists.
type Menu struct {
	prompt string
	log    *logger.Logger
}

// NewMenu creates a Menu. rofi must be present on PATH.
func NewMenu(prompt string, log *logger.Logger) (*Menu, error) {
	if _, err := exec.LookPath("rofi"); err != nil {
		return nil, fmt.Errorf("rofi is required but was not found: %w", err)
	}
	return &Menu{prompt: prompt, log: log}, nil
}

// Select shows entries in a dmenu and returns the index of the chosen row,
// or -1 when the user dismissed the menu.
func (m *Menu) Select(entries []string) (int, error) {
	if len(entries) == 0 {
		return -1, fmt.Errorf("no entries to display")
	}

	args := append(append([]string{}, baseArgs...), "-p", m.prompt)
	cmd := exec.Command("rofi", args...)
	cmd.Stdin = strings.NewReader(strings.Join(entries, "\n"))

	m.log.Debug("Executing rofi", "entries", len(entries), "command", cmd.String())
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// Exit code 1 means the menu was dismissed without a choice.
			m.log.Debug("Rofi exited without selection", "exit_code", exitErr.ExitCode())
			return -1, nil
		}
		m.log.Error("Failed to run rofi", err)
		return -1, fmt.Errorf("failed to run rofi: %w", err)
	}

	return parseSelection(string(output), len(entries))
}

// parseSelection converts rofi's `-format i` output into a row index.
func parseSelection(output string, entryCount int) (int, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return -1, nil
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("unexpected rofi output %q: %w", trimmed, err)
	}
	if idx < 0 || idx >= entryCount {
		return -1, fmt.Errorf("rofi returned out-of-range index %d", idx)
	}
	return idx, nil
}
