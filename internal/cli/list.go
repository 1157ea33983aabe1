package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"hypr-switch/internal/ipc"
	"hypr-switch/pkg/global"
)

var (
	listIDStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	listScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current window list",
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	log := global.GetLogger()

	if ipc.Available("") {
		resp, err := ipc.Send(ipc.Request{Command: "windows"}, "", log)
		if err == nil {
			if resp.Status != ipc.StatusSuccess {
				return fmt.Errorf("%s", resp.Message)
			}
			printEntries(resp.Results, false)
			return nil
		}
		log.Debug("Daemon unreachable, falling back to in-process list", "error", err)
	}

	sw, err := newSwitcher()
	if err != nil {
		return err
	}

	candidates, err := sw.Candidates()
	if err != nil {
		return err
	}

	entries := make([]ipc.ResultEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, ipc.ResultEntry{ID: c.ID, Display: c.Display})
	}
	printEntries(entries, false)
	return nil
}

// printEntries writes one window per line: styled columns on a terminal,
// plain tab-separated text when piped.
func printEntries(entries []ipc.ResultEntry, withScores bool) {
	styled := isatty.IsTerminal(os.Stdout.Fd())

	for _, e := range entries {
		switch {
		case styled && withScores:
			fmt.Printf("%s %s %s\n", listIDStyle.Render(e.ID), e.Display,
				listScoreStyle.Render(fmt.Sprintf("(%d)", e.Score)))
		case styled:
			fmt.Printf("%s %s\n", listIDStyle.Render(e.ID), e.Display)
		case withScores:
			fmt.Printf("%s\t%s\t%d\n", e.ID, e.Display, e.Score)
		default:
			fmt.Printf("%s\t%s\n", e.ID, e.Display)
		}
	}
}
