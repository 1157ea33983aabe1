package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hypr-switch/internal/fuzzy"
	"hypr-switch/internal/rofi"
	"hypr-switch/pkg/global"
)

var rofiPattern string

var rofiCmd = &cobra.Command{
	Use:   "rofi",
	Short: "Pick a window through a rofi menu",
	Long: `Pick a window through a rofi dmenu. Without -q the full window list is
shown; with -q only the ranked matches for the pattern appear, best first.`,
	RunE: runRofi,
}

func init() {
	rofiCmd.Flags().StringVarP(&rofiPattern, "query", "q", "", "pattern to pre-filter the window list")
}

func runRofi(_ *cobra.Command, _ []string) error {
	log := global.GetLogger()

	sw, err := newSwitcher()
	if err != nil {
		return err
	}

	var rows []fuzzy.Ranked
	if rofiPattern == "" {
		candidates, err := sw.Candidates()
		if err != nil {
			return err
		}
		for _, c := range candidates {
			rows = append(rows, fuzzy.Ranked{Candidate: c})
		}
	} else {
		_, results, err := sw.Query(rofiPattern)
		if err != nil {
			return err
		}
		rows = results
	}

	if len(rows) == 0 {
		return fmt.Errorf("no windows to show")
	}

	menu, err := rofi.NewMenu("window", log)
	if err != nil {
		return err
	}

	entries := make([]string, len(rows))
	for i, r := range rows {
		entries[i] = r.Display
	}

	idx, err := menu.Select(entries)
	if err != nil {
		return err
	}
	if idx < 0 {
		log.Debug("Rofi menu dismissed")
		return nil
	}

	return sw.Activate(rows[idx].ID)
}
