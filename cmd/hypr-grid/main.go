package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hypr-grid/internal/app"
	"hypr-grid/internal/wm"
	"hypr-grid/pkg/config"
	"hypr-grid/pkg/logger"
	"hypr-grid/pkg/notify"
)

const version = "0.1.0"

var (
	configPath string
	logFile    string
	debug      bool
)

// seams for tests
var (
	newCompositor = wm.NewCompositor
	newNotifier   = func(command string, log *logger.Logger) app.Notifier {
		return notify.NewNotifyService(command, log)
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hypr-grid",
		Short: "Navigate a grid of Hyprland workspaces grouped into activities",
		Long: `hypr-grid arranges the workspaces of every activity in a grid
("work:1" .. "work:9" for a 3x3 grid) and moves between them with
directional commands, activity switches, or by pushing the mouse against
a screen edge.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/hypr/hypr-grid.toml)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "path to log file (default "+logger.DefaultLogDir+"/"+logger.DefaultLogFile+")")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(navigationCommands()...)
	root.AddCommand(switchCommands()...)
	root.AddCommand(
		&cobra.Command{
			Use:   "mouse-loop",
			Short: "Switch workspaces when the cursor hits a screen edge",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(ctx context.Context, h *app.HyprGrid) error {
					return h.MouseLoop(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "print-activity-status",
			Short: "Print the active activity grid as JSON lines for status bars",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(ctx context.Context, h *app.HyprGrid) error {
					return h.PrintActivityStatus(ctx)
				})
			},
		},
	)
	return root
}

func newLogger() (*logger.Logger, error) {
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}

	path := logFile
	if path == "" {
		var err error
		if path, err = logger.DefaultLogPath(); err != nil {
			return nil, err
		}
	}

	return logger.NewLogger(
		logger.WithConsole(),
		logger.WithFile(path),
		logger.WithLevel(logLevel),
	)
}

// run sets up logging, configuration and the compositor connection, then
// executes fn. Failures are reported as desktop notifications.
func run(cmd *cobra.Command, fn func(context.Context, *app.HyprGrid) error) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Debug("Starting hypr-grid",
		"version", version,
		"command", cmd.Name(),
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH)

	cfg, err := config.FindConfig(configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", configPath)
		newNotifier("", log).Show(fmt.Sprintf("failed to load configuration: %v", err), notify.Error)
		return err
	}
	log.Debug("Configuration loaded",
		"activities", cfg.Activities,
		"workspaces", cfg.Workspaces,
		"polling_rate", cfg.PollingRate)

	notifier := newNotifier(cfg.NotifyCommand, log)

	compositor, err := newCompositor(log)
	if err != nil {
		log.Error("Failed to connect to compositor", err)
		notifier.Show(err.Error(), notify.Error)
		return err
	}

	h := app.New(cfg, compositor, notifier, cmd.OutOrStdout(), log)
	if err := fn(cmd.Context(), h); err != nil {
		h.Report(cmd.Name(), err)
		return err
	}
	return nil
}
