package notify

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// terminalScript prints "$0: $1" in color and waits for enter. The message
// arrives as an argument and is never parsed by the shell.
const terminalScript = `printf '%b%s:\033[0m %s\n\nPress enter to continue...' "$COLOR" "$0" "$1"; read -r _`

var commonTerminals = []string{
	"foot",
	"kitty",
	"alacritty",
	"wezterm",
	"ghostty",
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"x-terminal-emulator",
	"xterm",
}

// tryTerminalNotification opens a terminal window with the message. It
// blocks until the window is closed.
func (n *NotifyService) tryTerminalNotification(title string, message string, nType NotificationType) error {
	terminal := n.findTerminal()
	if terminal == "" {
		return fmt.Errorf("no terminal found")
	}

	color := `\033[32m`
	prefix := title + " - Info"
	if nType == Error {
		color = `\033[31m`
		prefix = title + " - Error"
	}

	var cmd *exec.Cmd
	switch filepath.Base(terminal) {
	case "gnome-terminal", "xfce4-terminal":
		cmd = exec.Command(terminal, "--", "sh", "-c", terminalScript, prefix, message)
	default:
		cmd = exec.Command(terminal, "-e", "sh", "-c", terminalScript, prefix, message)
	}
	cmd.Env = append(os.Environ(), "COLOR="+color)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to show terminal notification: %w", err)
	}
	n.log.Debug("Terminal notification sent",
		"terminal", terminal,
		"type", nType.String())
	return nil
}

// getSystemTerminal looks at $TERMINAL first, then at a list of common
// terminals.
func getSystemTerminal() string {
	if terminal := os.Getenv("TERMINAL"); terminal != "" {
		// drop any arguments
		terminal = strings.Fields(terminal)[0]
		if path, err := exec.LookPath(terminal); err == nil {
			return path
		}
	}

	for _, term := range commonTerminals {
		if path, err := exec.LookPath(term); err == nil {
			return path
		}
	}
	return ""
}
