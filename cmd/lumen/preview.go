package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	"github.com/alexisbeaulieu97/lumen/internal/tui/preview"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

type previewOptions struct {
	refresh     time.Duration
	watchConfig bool
}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open an interactive preview of the light",
		Long: `Open a terminal preview whose panel borders follow the light. Use space to
start or stop the orbit, the arrow keys to move the light, + and - to change
speed, r to reset, b to switch brand and q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return lumenerrors.NewCommandError("preview", "starting terminal UI",
					errors.New("stdin and stdout must be a terminal"),
					"use 'lumen watch' for non-interactive output")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPreview(ctx, app, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.refresh, "refresh", preview.DefaultRefresh, "Redraw interval")
	cmd.Flags().BoolVarP(&opts.watchConfig, "watch-config", "w", false, "Apply config file changes while running")

	return cmd
}

func runPreview(ctx context.Context, app *AppContext, opts previewOptions) error {
	log := app.Logger.With("command", "preview")

	engine := lighting.New(app.EngineOptions(stylevars.Global()))
	defer engine.Close()

	ctx = lighting.WithEngine(ctx, engine)
	tint := app.Config.Theme
	model := preview.NewModel(ctx, app.Brand(),
		preview.WithRefresh(opts.refresh),
		preview.WithTint(tint.Hue, tint.Saturation),
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watchConfig {
		stopWatch, err := watchConfig(ctx, app, program)
		if err != nil {
			return lumenerrors.NewCommandError("preview", "watching config", err,
				"run without --watch-config or pass --config")
		}
		defer stopWatch()
	}

	log.Debug("starting preview")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return lumenerrors.NewCommandError("preview", "running terminal UI", err, "")
	}
	return nil
}

func watchConfig(ctx context.Context, app *AppContext, program *tea.Program) (func(), error) {
	if app.ConfigPath == "" {
		return nil, errors.New("no config file was loaded")
	}

	w, err := config.NewWatcher(app.ConfigPath, func(cfg *config.Config) {
		program.Send(preview.ConfigReloadedMsg{Config: cfg})
	}, app.Logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w.Stop, nil
}
