package app

import (
	"context"
	"fmt"
	"io"

	"hypr-grid/internal/animation"
	"hypr-grid/internal/grid"
	"hypr-grid/internal/mouse"
	"hypr-grid/internal/status"
	"hypr-grid/internal/wm"
	"hypr-grid/pkg/config"
	"hypr-grid/pkg/core"
	"hypr-grid/pkg/notify"
)

// Notifier surfaces command failures to the user.
type Notifier interface {
	Show(message string, nType notify.NotificationType) error
}

// Step is a move of one slot on the grid.
type Step struct {
	DX, DY int
}

var (
	Left  = Step{DX: -1}
	Right = Step{DX: 1}
	Up    = Step{DY: -1}
	Down  = Step{DY: 1}
)

// Options are shared by the navigation commands.
type Options struct {
	// Cycle wraps around the grid border instead of stopping at it
	Cycle bool
	// MoveWindow takes the focused window to the target workspace
	MoveWindow bool
}

type HyprGrid struct {
	config     *config.Config
	grid       *grid.Grid
	wm         wm.Compositor
	animations *animation.Selector
	notifier   Notifier
	out        io.Writer
	log        core.Logger
}

// New wires the components for one command invocation. Status lines are
// written to out.
func New(cfg *config.Config, c wm.Compositor, notifier Notifier, out io.Writer, log core.Logger) *HyprGrid {
	g := grid.Build(cfg.Activities, cfg.GridWidth(), cfg.GridHeight())
	log.Debug("Grid built",
		"activities", g.Activities(),
		"width", g.Width(),
		"height", g.Height())

	return &HyprGrid{
		config:     cfg,
		grid:       g,
		wm:         c,
		animations: animation.NewSelector(cfg, c, log),
		notifier:   notifier,
		out:        out,
		log:        log,
	}
}

func (h *HyprGrid) Grid() *grid.Grid {
	return h.grid
}

// Move switches to the neighbouring workspace in the current activity.
func (h *HyprGrid) Move(ctx context.Context, step Step, opts Options) error {
	current, err := h.wm.ActiveWorkspace(ctx)
	if err != nil {
		return err
	}

	target, err := h.grid.Move(current.Name, step.DX, step.DY, opts.Cycle)
	if err != nil {
		return err
	}

	kind := animation.Vertical
	if step.DX != 0 {
		kind = animation.Horizontal
	}
	return h.switchTo(ctx, current.Name, target, kind, opts.MoveWindow)
}

// CycleActivity switches to the next or previous activity, keeping the
// position inside the grid.
func (h *HyprGrid) CycleActivity(ctx context.Context, dir grid.Direction, opts Options) error {
	current, err := h.wm.ActiveWorkspace(ctx)
	if err != nil {
		return err
	}

	target := h.grid.NextActivity(current.Name, dir, opts.Cycle)
	return h.switchTo(ctx, current.Name, target, animation.Activity, opts.MoveWindow)
}

// SwitchToActivity jumps to the activity called name.
func (h *HyprGrid) SwitchToActivity(ctx context.Context, name string, moveWindow bool) error {
	current, err := h.wm.ActiveWorkspace(ctx)
	if err != nil {
		return err
	}

	target, err := h.grid.SwitchActivity(current.Name, name)
	if err != nil {
		return err
	}
	return h.switchTo(ctx, current.Name, target, animation.Activity, moveWindow)
}

// SwitchToWorkspace jumps to a full "activity:workspace" name.
func (h *HyprGrid) SwitchToWorkspace(ctx context.Context, name string, moveWindow bool) error {
	target, err := h.grid.Lookup(name)
	if err != nil {
		return err
	}
	return h.switchTo(ctx, "", target, animation.Activity, moveWindow)
}

// SwitchToWorkspaceInActivity jumps to workspace name of the current activity.
func (h *HyprGrid) SwitchToWorkspaceInActivity(ctx context.Context, name string, moveWindow bool) error {
	current, err := h.wm.ActiveWorkspace(ctx)
	if err != nil {
		return err
	}

	target, err := h.grid.WorkspaceInActivity(current.Name, name)
	if err != nil {
		return err
	}
	return h.switchTo(ctx, current.Name, target, animation.Activity, moveWindow)
}

// MouseLoop runs the edge trigger loop until ctx is done.
func (h *HyprGrid) MouseLoop(ctx context.Context) error {
	return mouse.NewLoop(h.config, h.grid, h.wm, h.animations, h.log).Run(ctx)
}

// PrintActivityStatus prints status lines until ctx is done.
func (h *HyprGrid) PrintActivityStatus(ctx context.Context) error {
	return status.NewPrinter(h.grid, h.wm, h.out, h.log).Run(ctx)
}

// Report logs a failed command and shows it as a notification.
func (h *HyprGrid) Report(command string, err error) {
	h.log.Error("Command failed", err, "command", command)
	if h.notifier == nil {
		return
	}
	if nerr := h.notifier.Show(fmt.Sprintf("%s: %v", command, err), notify.Error); nerr != nil {
		h.log.Debug("Failed to show notification", "error", nerr.Error())
	}
}

func (h *HyprGrid) switchTo(ctx context.Context, from, to string, kind animation.Kind, moveWindow bool) error {
	h.log.Info("Switching workspace",
		"from", from,
		"to", to,
		"animation", kind.String(),
		"move_window", moveWindow)

	if err := h.animations.Apply(ctx, kind); err != nil {
		return err
	}
	return h.wm.SwitchWorkspace(ctx, to, moveWindow)
}
