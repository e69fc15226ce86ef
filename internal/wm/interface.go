package wm

import (
	"context"
	"math"
)

// Compositor is the control surface hypr-grid needs from the window
// manager. Every call may fail with a transport error.
type Compositor interface {
	// ActiveWorkspace returns the workspace focused on the active monitor
	ActiveWorkspace(ctx context.Context) (Workspace, error)
	// ActiveMonitor returns the focused monitor
	ActiveMonitor(ctx context.Context) (Monitor, error)
	// CursorPosition returns the pointer in global layout coordinates
	CursorPosition(ctx context.Context) (Point, error)
	// SwitchWorkspace focuses the named workspace, optionally taking the
	// focused window along
	SwitchWorkspace(ctx context.Context, name string, moveWindow bool) error
	// MoveCursor warps the pointer to an absolute position
	MoveCursor(ctx context.Context, p Point) error
	// Keyword changes a configuration value at runtime
	Keyword(ctx context.Context, key, value string) error
	// SubscribeWorkspaces streams workspace changes until ctx is done
	SubscribeWorkspaces(ctx context.Context) (<-chan WorkspaceEvent, error)
	// Name returns the WM name for logging/display
	Name() string
}

type Workspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Monitor is a Hyprland output. Width and Height are in physical pixels;
// X and Y are in layout coordinates.
type Monitor struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Scale     float64 `json:"scale"`
	Transform int     `json:"transform"`
	Focused   bool    `json:"focused"`
}

// LogicalSize returns the monitor size in layout coordinates, the space
// cursor positions are reported in.
func (m Monitor) LogicalSize() (width, height int) {
	width, height = m.Width, m.Height
	// odd transforms rotate by 90 or 270 degrees
	if m.Transform%2 == 1 {
		width, height = height, width
	}
	if m.Scale > 0 {
		width = int(math.Round(float64(width) / m.Scale))
		height = int(math.Round(float64(height) / m.Scale))
	}
	return width, height
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WorkspaceEvent reports that a regular workspace became active. The last
// event of a stream that broke off carries only Err.
type WorkspaceEvent struct {
	Name string
	Err  error
}
