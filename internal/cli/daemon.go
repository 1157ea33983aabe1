package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hypr-switch/internal/ipc"
	"hypr-switch/pkg/config"
	"hypr-switch/pkg/global"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the socket server other commands talk to",
	RunE:  runDaemon,
}

func runDaemon(_ *cobra.Command, _ []string) error {
	cfg, log, _ := global.GetAll()

	sw, err := newSwitcher()
	if err != nil {
		return err
	}

	srv, err := ipc.NewServer(sw, "", log)
	if err != nil {
		return err
	}

	// Hot reload: on a config file change, re-read it and push the new
	// values into the running switcher.
	if path := cfg.Path(); path != "" {
		watcher, err := config.Watch(path, log, func() {
			if err := cfg.Reload(); err != nil {
				log.Error("Failed to reload config", err)
				return
			}
			sw.Reconfigure(cfg)
			log.Info("Configuration reloaded", "path", path)
		})
		if err != nil {
			log.Warn("Config hot reload unavailable", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		log.Info("Shutting down", "signal", sig.String())
		srv.Close()
		<-done
		return nil
	case err := <-done:
		return err
	}
}
