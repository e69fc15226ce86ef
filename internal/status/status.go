// Package status renders the active activity as a small block grid for
// status bars such as waybar.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"hypr-grid/internal/grid"
	"hypr-grid/internal/wm"
	"hypr-grid/pkg/core"
)

var ErrEventsClosed = errors.New("workspace event stream closed")

const (
	filledCell = "███"
	activeCell = "   "
)

// Line is one status update as waybar's custom module expects it.
type Line struct {
	Text string `json:"text"`
}

// Render draws the grid of the activity workspace belongs to, with the
// active slot left blank. ok is false for workspaces outside the grid.
func Render(g *grid.Grid, workspace string) (string, bool) {
	loc, ok := g.Locate(workspace)
	if !ok || !loc.Managed() {
		return "", false
	}

	var b strings.Builder
	for i := 0; i < g.Size(); i++ {
		switch {
		case i == 0:
		case i%g.Width() == 0:
			b.WriteString("\n")
		default:
			b.WriteString(" ")
		}
		if i == loc.Workspace {
			b.WriteString(activeCell)
		} else {
			b.WriteString(filledCell)
		}
	}
	return b.String(), true
}

// Printer writes a status line per workspace change.
type Printer struct {
	grid *grid.Grid
	wm   wm.Compositor
	out  io.Writer
	log  core.Logger
}

func NewPrinter(g *grid.Grid, c wm.Compositor, out io.Writer, log core.Logger) *Printer {
	return &Printer{grid: g, wm: c, out: out, log: log}
}

// Print writes the line for workspace, if it is part of the grid.
func (p *Printer) Print(workspace string) error {
	text, ok := Render(p.grid, workspace)
	if !ok {
		p.log.Debug("Not rendering unmanaged workspace", "workspace", workspace)
		return nil
	}

	data, err := json.Marshal(Line{Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	data = append(data, '\n')
	if _, err := p.out.Write(data); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	return nil
}

// Run prints the current workspace and then follows workspace changes in
// arrival order until ctx is done or the event stream ends.
func (p *Printer) Run(ctx context.Context) error {
	current, err := p.wm.ActiveWorkspace(ctx)
	if err != nil {
		return err
	}
	if err := p.Print(current.Name); err != nil {
		return err
	}

	events, err := p.wm.SubscribeWorkspaces(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || ev.Err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if ev.Err != nil {
					return fmt.Errorf("workspace events ended: %w", ev.Err)
				}
				return fmt.Errorf("workspace events ended: %w", ErrEventsClosed)
			}
			if err := p.Print(ev.Name); err != nil {
				return err
			}
		}
	}
}
