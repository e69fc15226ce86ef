package ipc

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	RequestSocketName = ".socket.sock"
	EventSocketName   = ".socket2.sock"

	legacySocketRoot = "/tmp/hypr"
)

var ErrNoInstance = errors.New("HYPRLAND_INSTANCE_SIGNATURE is not set")

// InstanceDir returns the directory holding the sockets of the running
// Hyprland instance. Newer releases use $XDG_RUNTIME_DIR/hypr, older ones
// /tmp/hypr.
func InstanceDir() (string, error) {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return "", ErrNoInstance
	}

	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		dir := filepath.Join(runtimeDir, "hypr", sig)
		if _, err := os.Stat(filepath.Join(dir, RequestSocketName)); err == nil {
			return dir, nil
		}
	}
	return filepath.Join(legacySocketRoot, sig), nil
}
