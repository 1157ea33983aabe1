// Package cli wires the switcher's commands: the daemon, the interactive
// picker, the one-shot query/switch paths used from hotkeys, and the rofi
// frontend.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hypr-switch/internal/switcher"
	"hypr-switch/internal/tui"
	"hypr-switch/internal/wm"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/global"
	"hypr-switch/pkg/logger"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "hypr-switch",
	Short: "Fuzzy window switcher for Hyprland and X11",
	Long: `hypr-switch enumerates your open windows, ranks them against what you
type, and focuses the one you pick. Run it bare for the interactive picker,
bind "hypr-switch switch -q ..." to a hotkey, or keep "hypr-switch daemon"
running and let the other commands talk to it over its socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsTTY() {
			return cmd.Help()
		}
		return runPick(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	defer func() {
		if log := global.GetLogger(); log != nil {
			log.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(rofiCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup initializes the logger, loads the configuration and fills the
// globals before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	logLevel := zerolog.InfoLevel
	if flagDebug {
		logLevel = zerolog.DebugLevel
	}

	opts := []logger.Option{logger.WithLevel(logLevel)}
	// Console output would bleed into the picker's alt screen; interactive
	// commands log to file only.
	if !isInteractive(cmd) {
		opts = append(opts, logger.WithConsole())
	}

	log, err := logger.NewLogger(opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.FindConfig(flagConfig, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", flagConfig)
		return err
	}

	global.InitGlobals(cfg, log)
	log.Debug("Initialized",
		"command", cmd.Name(),
		"config_path", cfg.Path(),
		"log_level", logLevel.String())
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "pick" || cmd == rootCmd
}

// newSwitcher builds a switcher over the detected window manager, with the
// configured behavior plus any per-command flag overrides.
func newSwitcher(overrides ...switcher.Option) (*switcher.Switcher, error) {
	cfg, log, _ := global.GetAll()

	manager, err := wm.NewManager(log)
	if err != nil {
		return nil, err
	}

	opts := append(switcher.FromConfig(cfg), overrides...)
	return switcher.New(manager, log, opts...), nil
}
