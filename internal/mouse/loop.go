// Package mouse switches workspaces when the pointer hits a screen edge
// and wraps the pointer to the opposite side.
package mouse

import (
	"context"
	"fmt"
	"time"

	"hypr-grid/internal/animation"
	"hypr-grid/internal/grid"
	"hypr-grid/internal/wm"
	"hypr-grid/pkg/config"
	"hypr-grid/pkg/core"
)

type Loop struct {
	grid       *grid.Grid
	wm         wm.Compositor
	animations *animation.Selector
	log        core.Logger

	interval   time.Duration
	edgeWidth  int
	edgeMargin int
}

func NewLoop(cfg *config.Config, g *grid.Grid, c wm.Compositor, animations *animation.Selector, log core.Logger) *Loop {
	return &Loop{
		grid:       g,
		wm:         c,
		animations: animations,
		log:        log,
		interval:   time.Duration(cfg.PollingRate) * time.Millisecond,
		edgeWidth:  cfg.EdgeWidth,
		edgeMargin: EffectiveMargin(cfg.EdgeWidth, cfg.EdgeMargin, log),
	}
}

// EffectiveMargin returns the inset used after a wrap. A margin that would
// put the cursor back inside the opposite band is raised to width+2.
func EffectiveMargin(width, margin int, log core.Logger) int {
	if minMargin := width + 2; margin < minMargin {
		log.Warn("Edge margin inside the edge band, using a wider margin",
			"edge_width", width,
			"edge_margin", margin,
			"effective_margin", minMargin)
		return minMargin
	}
	return margin
}

// Run focuses the first workspace and polls the cursor until ctx is done.
// A compositor error ends the loop.
//
// The monitor geometry (size, scale, rotation) is read once; changing it
// needs a restart.
func (l *Loop) Run(ctx context.Context) error {
	first := l.grid.Name(0, 0)
	if err := l.wm.SwitchWorkspace(ctx, first, false); err != nil {
		return l.stopped(ctx, err)
	}

	monitor, err := l.wm.ActiveMonitor(ctx)
	if err != nil {
		return l.stopped(ctx, err)
	}
	l.log.Info("Mouse loop started",
		"monitor", monitor.Name,
		"width", monitor.Width,
		"height", monitor.Height,
		"scale", monitor.Scale,
		"polling_rate", l.interval.String(),
		"edge_width", l.edgeWidth,
		"edge_margin", l.edgeMargin)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Info("Mouse loop stopped")
			return nil
		case <-timer.C:
		}

		if err := l.Tick(ctx, monitor); err != nil {
			return l.stopped(ctx, err)
		}
		timer.Reset(l.interval)
	}
}

func (l *Loop) stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("mouse loop: %w", err)
}

// Tick samples the cursor once and switches workspace if it sits on an
// edge. Unmanaged workspaces are skipped.
func (l *Loop) Tick(ctx context.Context, monitor wm.Monitor) error {
	cursor, err := l.wm.CursorPosition(ctx)
	if err != nil {
		return err
	}

	edge := Detect(cursor, monitor, l.edgeWidth, l.edgeMargin)
	if !edge.Triggered() {
		return nil
	}

	current, err := l.wm.ActiveWorkspace(ctx)
	if err != nil {
		return err
	}

	loc, ok := l.grid.Locate(current.Name)
	if !ok || !loc.Managed() {
		l.log.Warn("Unknown workspace", "workspace", current.Name, "error", grid.ErrNotInManagedWorkspace.Error())
		return nil
	}

	next := l.grid.Name(loc.Activity, l.grid.MoveIndex(loc.Workspace, edge.DX, edge.DY, true))
	if next == current.Name {
		return nil
	}

	kind := animation.Vertical
	if edge.Horizontal() {
		kind = animation.Horizontal
	}
	l.log.Debug("Edge triggered",
		"from", current.Name,
		"to", next,
		"dx", edge.DX,
		"dy", edge.DY)

	if err := l.animations.Apply(ctx, kind); err != nil {
		return err
	}
	if err := l.wm.SwitchWorkspace(ctx, next, false); err != nil {
		return err
	}
	return l.wm.MoveCursor(ctx, edge.Cursor)
}
