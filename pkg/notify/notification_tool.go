package notify

import (
	"fmt"
	"os/exec"
)

type notificationTool struct {
	name         string
	buildCommand func(tool string, title string, message string, nType NotificationType) *exec.Cmd
}

var notificationTools = []notificationTool{
	{
		name: "notify-send",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
				title += " Error"
			}
			return exec.Command(tool, "-u", urgency, "-a", "hypr-grid", title, message)
		},
	},
	{
		name: "dunstify",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
				title += " Error"
			}
			return exec.Command(tool, "-u", urgency, "-t", "5000", title, message)
		},
	},
	{
		name: "hyprctl",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			icon := "1"
			if nType == Error {
				icon = "3"
			}
			return exec.Command(tool, "notify", icon, "5000", "0", title+": "+message)
		},
	},
}

func (n *NotifyService) trySystemNotification(title string, message string, nType NotificationType) error {
	for _, tool := range n.tools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		cmd := tool.buildCommand(tool.name, title, message, nType)
		if err := cmd.Run(); err == nil {
			n.log.Debug("Notification sent successfully",
				"tool", tool.name,
				"type", nType.String())
			return nil
		}
	}
	return fmt.Errorf("no notification tools available")
}
