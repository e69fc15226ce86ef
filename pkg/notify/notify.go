package notify

import (
	"fmt"
	"os/exec"

	"hypr-grid/pkg/core"
)

const title = "hypr-grid"

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "ERROR"
	}
	return "INFO"
}

// NotifyService shows desktop notifications. Commands usually run from
// key bindings, so stderr is not visible to the user.
type NotifyService struct {
	log           core.Logger
	notifyCommand string
	bus           func(title, message string, nType NotificationType) error
	tools         []notificationTool
	findTerminal  func() string
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log core.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		bus:           busNotify,
		tools:         notificationTools,
		findTerminal:  getSystemTerminal,
	}
}

// Show displays a notification of the specified type. When nothing can
// display it the message is only logged.
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		err := n.executeNotifyCommand(message, nType)
		if err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand, "error", err.Error())
	}

	if n.bus != nil {
		err := n.bus(title, message, nType)
		if err == nil {
			return nil
		}
		n.log.Debug("Session bus notification failed", "error", err.Error())
	}

	err := n.trySystemNotification(title, message, nType)
	if err == nil {
		return nil
	}

	if n.findTerminal != nil {
		terr := n.tryTerminalNotification(title, message, nType)
		if terr == nil {
			return nil
		}
		err = fmt.Errorf("%w; %w", err, terr)
	}

	n.log.Warn("Notification not shown", "message", message, "type", nType.String(), "error", err.Error())
	return err
}

// executeNotifyCommand runs the configured command as `sh -c 'cmd "$0" "$1"'`
// so the message is never interpreted by the shell.
func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notify_command", n.notifyCommand, "type", nType.String())

	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$0" "$1"`, nType.String(), message)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify command failed: %w: %s", err, output)
	}
	return nil
}
