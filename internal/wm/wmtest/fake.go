// Package wmtest provides an in-memory compositor for tests.
package wmtest

import (
	"context"
	"fmt"
	"sync"

	"hypr-grid/internal/wm"
)

// Fake keeps the compositor state in memory and records every command.
// Queries are not recorded.
type Fake struct {
	mu        sync.Mutex
	workspace wm.Workspace
	monitor   wm.Monitor
	cursor    wm.Point
	calls     []string
	errs      map[string]error
	events    chan wm.WorkspaceEvent
}

func New(workspace string, width, height int) *Fake {
	return &Fake{
		workspace: wm.Workspace{Name: workspace},
		monitor:   wm.Monitor{Name: "DP-1", Width: width, Height: height, Focused: true},
		errs:      make(map[string]error),
		events:    make(chan wm.WorkspaceEvent),
	}
}

// Fail makes the named method (e.g. "SwitchWorkspace") return err.
func (f *Fake) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

func (f *Fake) SetWorkspace(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workspace.Name = name
}

func (f *Fake) SetCursor(p wm.Point) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursor = p
}

func (f *Fake) Cursor() wm.Point {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursor
}

// Calls returns the recorded commands in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Events is the channel handed out by SubscribeWorkspaces.
func (f *Fake) Events() chan<- wm.WorkspaceEvent {
	return f.events
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) ActiveWorkspace(ctx context.Context) (wm.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.workspace, f.check(ctx, "ActiveWorkspace")
}

func (f *Fake) ActiveMonitor(ctx context.Context) (wm.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.monitor, f.check(ctx, "ActiveMonitor")
}

func (f *Fake) CursorPosition(ctx context.Context) (wm.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursor, f.check(ctx, "CursorPosition")
}

func (f *Fake) SwitchWorkspace(ctx context.Context, name string, moveWindow bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(ctx, "SwitchWorkspace"); err != nil {
		return err
	}
	if moveWindow {
		f.calls = append(f.calls, "movetoworkspace "+name)
	} else {
		f.calls = append(f.calls, "workspace "+name)
	}
	f.workspace.Name = name
	return nil
}

func (f *Fake) MoveCursor(ctx context.Context, p wm.Point) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(ctx, "MoveCursor"); err != nil {
		return err
	}
	f.calls = append(f.calls, fmt.Sprintf("movecursor %d %d", p.X, p.Y))
	f.cursor = p
	return nil
}

func (f *Fake) Keyword(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(ctx, "Keyword"); err != nil {
		return err
	}
	f.calls = append(f.calls, "keyword "+key+" "+value)
	return nil
}

func (f *Fake) SubscribeWorkspaces(ctx context.Context) (<-chan wm.WorkspaceEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(ctx, "SubscribeWorkspaces"); err != nil {
		return nil, err
	}
	return f.events, nil
}

// check must be called with f.mu held. A cancelled context fails like a
// closed socket would.
func (f *Fake) check(ctx context.Context, method string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.errs[method]
}

var _ wm.Compositor = (*Fake)(nil)
