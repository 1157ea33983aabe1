package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hypr-switch/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print hypr-switch version",
	RunE: func(_ *cobra.Command, _ []string) error {
		if versionShort {
			fmt.Println(version.Short())
		} else {
			fmt.Printf("hypr-switch %s\n", version.Full())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
