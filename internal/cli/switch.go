package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hypr-switch/internal/ipc"
	"hypr-switch/internal/switcher"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/notify"
)

var (
	switchPattern       string
	switchCaseSensitive bool
)

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Focus the window that best matches a pattern",
	Long: `Focus the window that best matches a pattern. This is the hotkey entry
point: bind e.g. "hypr-switch switch -q browser" to jump straight to the
best match without a menu.`,
	RunE: runSwitch,
}

func init() {
	switchCmd.Flags().StringVarP(&switchPattern, "query", "q", "", "pattern to match against window names")
	switchCmd.Flags().BoolVar(&switchCaseSensitive, "case-sensitive", false, "match with letter case")
	switchCmd.MarkFlagRequired("query")
}

func runSwitch(cmd *cobra.Command, _ []string) error {
	log := global.GetLogger()
	notifier := global.GetNotifier()

	if ipc.Available("") {
		resp, err := ipc.Send(ipc.Request{Command: "switch", Pattern: switchPattern}, "", log)
		if err == nil {
			if resp.Status != ipc.StatusSuccess {
				notifier.Show(resp.Message, notify.Error)
				return fmt.Errorf("%s", resp.Message)
			}
			fmt.Println(resp.Message)
			return nil
		}
		log.Debug("Daemon unreachable, falling back to in-process switch", "error", err)
	}

	var opts []switcher.Option
	if cmd.Flags().Changed("case-sensitive") {
		opts = append(opts, switcher.WithCaseSensitive(switchCaseSensitive))
	}

	sw, err := newSwitcher(opts...)
	if err != nil {
		return err
	}

	w, err := sw.SwitchTo(switchPattern)
	if err != nil {
		// Hotkey invocations have no terminal to print to.
		notifier.Show(err.Error(), notify.Error)
		return err
	}

	fmt.Printf("Switched to %s\n", w.Class)
	return nil
}
