package main

import (
	"context"

	"github.com/spf13/cobra"

	"hypr-grid/internal/app"
	"hypr-grid/internal/grid"
)

func addNavigationFlags(cmd *cobra.Command, opts *app.Options) {
	cmd.Flags().BoolVarP(&opts.Cycle, "cycle", "c", false, "wrap around at the grid border")
	cmd.Flags().BoolVarP(&opts.MoveWindow, "move-window", "w", false, "move focused window and move to workspace")
}

func navigationCommands() []*cobra.Command {
	moves := []struct {
		use   string
		short string
		step  app.Step
	}{
		{"move-left", "Move to the workspace on the left", app.Left},
		{"move-right", "Move to the workspace on the right", app.Right},
		{"move-up", "Move to the workspace above", app.Up},
		{"move-down", "Move to the workspace below", app.Down},
	}

	var cmds []*cobra.Command
	for _, m := range moves {
		var opts app.Options
		step := m.step
		cmd := &cobra.Command{
			Use:   m.use,
			Short: m.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(ctx context.Context, h *app.HyprGrid) error {
					return h.Move(ctx, step, opts)
				})
			},
		}
		addNavigationFlags(cmd, &opts)
		cmds = append(cmds, cmd)
	}

	for _, a := range []struct {
		use   string
		short string
		dir   grid.Direction
	}{
		{"next-activity", "Switch to the next activity", grid.Next},
		{"prev-activity", "Switch to the previous activity", grid.Prev},
	} {
		var opts app.Options
		dir := a.dir
		cmd := &cobra.Command{
			Use:   a.use,
			Short: a.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(ctx context.Context, h *app.HyprGrid) error {
					return h.CycleActivity(ctx, dir, opts)
				})
			},
		}
		addNavigationFlags(cmd, &opts)
		cmds = append(cmds, cmd)
	}

	return cmds
}

type switchFunc func(h *app.HyprGrid, ctx context.Context, name string, moveWindow bool) error

func switchCommands() []*cobra.Command {
	switches := []struct {
		use      string
		short    string
		nameHelp string
		fn       switchFunc
	}{
		{"switch-to-activity", "Switch to an activity, keeping the grid position", "<activity name>", (*app.HyprGrid).SwitchToActivity},
		{"switch-to-workspace", "Switch to a workspace by its full name", "<activity name>:<workspace name>", (*app.HyprGrid).SwitchToWorkspace},
		{"switch-to-workspace-in-activity", "Switch to a workspace of the current activity", "<workspace name>", (*app.HyprGrid).SwitchToWorkspaceInActivity},
	}

	var cmds []*cobra.Command
	for _, s := range switches {
		var name string
		var moveWindow bool
		fn := s.fn
		cmd := &cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(ctx context.Context, h *app.HyprGrid) error {
					return fn(h, ctx, name, moveWindow)
				})
			},
		}
		cmd.Flags().StringVarP(&name, "name", "n", "", s.nameHelp)
		cmd.Flags().BoolVarP(&moveWindow, "move-window", "w", false, "move focused window and move to workspace")
		_ = cmd.MarkFlagRequired("name")
		cmds = append(cmds, cmd)
	}
	return cmds
}
