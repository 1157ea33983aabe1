package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hypr-switch/internal/ipc"
	"hypr-switch/internal/switcher"
	"hypr-switch/pkg/global"
)

var (
	queryPattern       string
	queryCaseSensitive bool
	queryMaxResults    int
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the windows matching a pattern, best first",
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryPattern, "query", "q", "", "pattern to match against window names")
	queryCmd.Flags().BoolVar(&queryCaseSensitive, "case-sensitive", false, "match with letter case")
	queryCmd.Flags().IntVar(&queryMaxResults, "max-results", 0, "limit the result list (0 = use config)")
	queryCmd.MarkFlagRequired("query")
}

func runQuery(cmd *cobra.Command, _ []string) error {
	log := global.GetLogger()

	// A running daemon answers from its warm snapshot; without one the
	// query runs in-process against a fresh enumeration.
	if ipc.Available("") {
		resp, err := ipc.Send(ipc.Request{Command: "query", Pattern: queryPattern}, "", log)
		if err == nil {
			if resp.Status != ipc.StatusSuccess {
				return fmt.Errorf("%s", resp.Message)
			}
			printEntries(resp.Results, true)
			return nil
		}
		log.Debug("Daemon unreachable, falling back to in-process query", "error", err)
	}

	sw, err := newSwitcher(queryOverrides(cmd)...)
	if err != nil {
		return err
	}

	_, results, err := sw.Query(queryPattern)
	if err != nil {
		return err
	}

	entries := make([]ipc.ResultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, ipc.ResultEntry{ID: r.ID, Display: r.Display, Score: r.Score})
	}
	printEntries(entries, true)
	return nil
}

// queryOverrides maps the shared matching flags onto switcher options,
// applying only the flags the user actually set.
func queryOverrides(cmd *cobra.Command) []switcher.Option {
	var opts []switcher.Option
	if cmd.Flags().Changed("case-sensitive") {
		opts = append(opts, switcher.WithCaseSensitive(queryCaseSensitive))
	}
	if cmd.Flags().Changed("max-results") {
		opts = append(opts, switcher.WithMaxResults(queryMaxResults))
	}
	return opts
}
