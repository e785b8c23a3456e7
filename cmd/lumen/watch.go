package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

type watchOptions struct {
	duration time.Duration
	interval time.Duration
	speed    float64
	dump     bool
	store    *stylevars.Store
}

func newWatchCmd(app *AppContext) *cobra.Command {
	opts := watchOptions{store: stylevars.Global()}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate the light headlessly and print the mirrored angle",
		Long: `Run the light animation without a terminal UI. The engine mirrors every
shadow variable into the global style variable store, the same place a
stylesheet would read it, and the angle and panel shadow are read back from
there.`,
		Example: `  lumen watch --duration 5s --speed 2
  lumen watch --duration 2s --dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.interval <= 0 {
				return lumenerrors.NewCommandError("watch", "validating flags",
					fmt.Errorf("interval must be positive, got %s", opts.interval), "try --interval 250ms")
			}
			if !cmd.Flags().Changed("speed") {
				opts.speed = app.Config.Engine.InitialSpeed
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd.OutOrStdout(), app, opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.duration, "duration", "d", 0, "Stop after this long (0 runs until interrupted)")
	cmd.Flags().DurationVarP(&opts.interval, "interval", "i", 250*time.Millisecond, "How often to print the mirrored angle")
	cmd.Flags().Float64VarP(&opts.speed, "speed", "s", 0, "Animation speed multiplier (default: engine.initial_speed)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Print the final :root block from the store on exit")

	return cmd
}

func runWatch(ctx context.Context, out io.Writer, app *AppContext, opts watchOptions) error {
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	engineOpts := app.EngineOptions(opts.store)
	engineOpts.InitialAnimating = true
	engineOpts.InitialSpeed = opts.speed
	engine := lighting.New(engineOpts)
	defer engine.Close()

	brand := app.Brand()
	engine.OnAngleChange(lighting.MirrorVariablesTo(opts.store, brand.Hue, brand.Saturation))

	log := app.Logger.With("command", "watch")
	log.WithFields(map[string]any{
		"speed":    engine.Speed(),
		"interval": opts.interval.String(),
	}).Info("watching light")

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("watch finished")
			if opts.dump {
				_, err := fmt.Fprint(out, opts.store.Render())
				return err
			}
			return nil
		case <-ticker.C:
			if err := printMirrored(out, opts.store); err != nil {
				return err
			}
		}
	}
}

func printMirrored(out io.Writer, store *stylevars.Store) error {
	raw, ok := lighting.MirroredAngle(store)
	if !ok {
		return nil
	}
	angle, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return lumenerrors.NewCommandError("watch", "reading mirrored angle", err, "")
	}

	panel, ok := store.Get(lighting.PanelShadowVar)
	if !ok {
		return nil
	}
	_, err = fmt.Fprintf(out, "%s=%6.1f  panel: %s\n", stylevars.LightAngle, angle, panel)
	return err
}
