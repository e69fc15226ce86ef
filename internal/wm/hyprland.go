package wm

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"hypr-grid/internal/ipc"
	"hypr-grid/pkg/core"
)

var ErrNoFocusedMonitor = errors.New("no focused monitor")

type Hyprland struct {
	client      *ipc.Client
	eventSocket string
	log         core.Logger
}

// NewHyprland talks to the instance whose sockets live in dir.
func NewHyprland(dir string, log core.Logger) *Hyprland {
	log.Debug("Using Hyprland instance", "dir", dir)
	return &Hyprland{
		client:      ipc.NewClient(filepath.Join(dir, ipc.RequestSocketName), log),
		eventSocket: filepath.Join(dir, ipc.EventSocketName),
		log:         log,
	}
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) ActiveWorkspace(ctx context.Context) (Workspace, error) {
	var ws Workspace
	if err := h.client.Query(ctx, "activeworkspace", &ws); err != nil {
		return Workspace{}, fmt.Errorf("failed to get active workspace: %w", err)
	}
	return ws, nil
}

func (h *Hyprland) ActiveMonitor(ctx context.Context) (Monitor, error) {
	var monitors []Monitor
	if err := h.client.Query(ctx, "monitors", &monitors); err != nil {
		return Monitor{}, fmt.Errorf("failed to get monitors: %w", err)
	}
	for _, m := range monitors {
		if m.Focused {
			return m, nil
		}
	}
	return Monitor{}, ErrNoFocusedMonitor
}

func (h *Hyprland) CursorPosition(ctx context.Context) (Point, error) {
	var p Point
	if err := h.client.Query(ctx, "cursorpos", &p); err != nil {
		return Point{}, fmt.Errorf("failed to get cursor position: %w", err)
	}
	return p, nil
}

func (h *Hyprland) SwitchWorkspace(ctx context.Context, name string, moveWindow bool) error {
	dispatcher := "workspace"
	if moveWindow {
		dispatcher = "movetoworkspace"
	}
	h.log.Debug("Switching workspace", "workspace", name, "move_window", moveWindow)

	if err := h.client.Dispatch(ctx, dispatcher, "name:"+name); err != nil {
		return fmt.Errorf("failed to switch to workspace %s: %w", name, err)
	}
	return nil
}

func (h *Hyprland) MoveCursor(ctx context.Context, p Point) error {
	if err := h.client.Dispatch(ctx, "movecursor", strconv.Itoa(p.X), strconv.Itoa(p.Y)); err != nil {
		return fmt.Errorf("failed to move cursor: %w", err)
	}
	return nil
}

func (h *Hyprland) Keyword(ctx context.Context, key, value string) error {
	if err := h.client.Keyword(ctx, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// SubscribeWorkspaces filters the event socket down to regular workspace
// changes. The channel is closed when the subscription ends.
func (h *Hyprland) SubscribeWorkspaces(ctx context.Context) (<-chan WorkspaceEvent, error) {
	sub, err := ipc.Subscribe(ctx, h.eventSocket, h.log)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to workspace events: %w", err)
	}

	out := make(chan WorkspaceEvent)
	go func() {
		defer close(out)
		for ev := range sub.Events() {
			if ev.Name != "workspace" || isSpecial(ev.Data) {
				continue
			}
			select {
			case out <- WorkspaceEvent{Name: ev.Data}:
			case <-ctx.Done():
				// drain so the reader can observe cancellation
				for range sub.Events() {
				}
				return
			}
		}
		h.log.Debug("Workspace subscription ended", "reason", sub.Err())
		if ctx.Err() != nil {
			return
		}
		select {
		case out <- WorkspaceEvent{Err: sub.Err()}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}

func isSpecial(name string) bool {
	return name == "special" || strings.HasPrefix(name, "special:")
}
