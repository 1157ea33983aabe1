package notify

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"

	"hypr-switch/pkg/logger"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

// NotifyService handles system notifications
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
	}
}

// Show displays a notification of the specified type. The configured
// command is tried first, then the common desktop notifiers, then stderr
// when running in a terminal.
func (n *NotifyService) Show(message string, nType NotificationType) error {
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	if err := n.trySystemNotification(message, nType); err == nil {
		return nil
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		prefix := "ERROR"
		if nType == Info {
			prefix = "INFO"
		}
		fmt.Fprintf(os.Stderr, "[%s] %s\n", prefix, message)
		return nil
	}

	n.log.Warn("No notification mechanism available", "message", message)
	return fmt.Errorf("no notification mechanism available")
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	typeStr := "ERROR"
	if nType == Info {
		typeStr = "INFO"
	}

	n.log.Debug("Executing notify command", "command", n.notifyCommand, "type", typeStr)
	// The type and message travel as positional parameters so the shell
	// never interprets their contents (quotes, $, backticks).
	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$@"`, "sh", typeStr, message)
	return cmd.Run()
}

// trySystemNotification walks the common desktop notifiers in order of
// preference and uses the first one present on PATH.
func (n *NotifyService) trySystemNotification(message string, nType NotificationType) error {
	urgency := "critical"
	title := "hypr-switch error"
	if nType == Info {
		urgency = "normal"
		title = "hypr-switch"
	}

	type tool struct {
		name string
		args []string
	}
	tools := []tool{
		{"dunstify", []string{"-u", urgency, title, message}},
		{"notify-send", []string{"-u", urgency, title, message}},
		{"zenity", []string{"--notification", "--text", title + ": " + message}},
	}

	for _, tl := range tools {
		if _, err := exec.LookPath(tl.name); err != nil {
			continue
		}
		n.log.Debug("Sending system notification", "tool", tl.name)
		if err := exec.Command(tl.name, tl.args...).Run(); err == nil {
			return nil
		}
		n.log.Warn("Notification tool failed", "tool", tl.name)
	}

	return fmt.Errorf("no system notification tool succeeded")
}
