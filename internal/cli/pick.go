package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hypr-switch/internal/tui"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/notify"
)

var pickHeight int

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a window interactively",
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().IntVar(&pickHeight, "height", 10, "visible rows in the picker (0 = fit terminal)")
}

func runPick(_ *cobra.Command, _ []string) error {
	cfg, log, notifier := global.GetAll()

	// The picker re-ranks locally per keystroke, so it always works on a
	// fresh in-process switcher rather than round-tripping the daemon.
	sw, err := newSwitcher()
	if err != nil {
		return err
	}

	candidates, err := sw.Candidates()
	if err != nil {
		notifier.Show("Failed to list windows", notify.Error)
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no windows open")
	}

	chosen, err := tui.Run(candidates,
		tui.WithTitle("Switch window"),
		tui.WithCaseSensitive(cfg.GetCaseSensitive()),
		tui.WithHeight(pickHeight),
	)
	if err != nil {
		return err
	}
	if chosen == nil {
		log.Debug("Picker canceled")
		return nil
	}

	return sw.Activate(chosen.ID)
}
