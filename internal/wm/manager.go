package wm

import (
	"fmt"
	"os"

	"hypr-grid/internal/ipc"
	"hypr-grid/pkg/core"
)

// NewCompositor picks the compositor for the current session
func NewCompositor(log core.Logger) (Compositor, error) {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	log.Debug("Session type detected", "session", sessionType)

	// Hyprland started from a tty may leave XDG_SESSION_TYPE unset
	if sessionType != "" && sessionType != "wayland" {
		return nil, fmt.Errorf("unsupported session type: %s", sessionType)
	}

	dir, err := ipc.InstanceDir()
	if err != nil {
		return nil, fmt.Errorf("unsupported Wayland compositor: only Hyprland is supported: %w", err)
	}

	c := NewHyprland(dir, log)
	log.Debug("Window manager initialized", "name", c.Name())
	return c, nil
}
