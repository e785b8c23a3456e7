package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
	"github.com/alexisbeaulieu97/lumen/pkg/diff"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

type cssOptions struct {
	angle      float64
	brand      string
	hue        float64
	saturation float64
	compare    float64
}

func newCSSCmd(app *AppContext) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the shadow custom properties for a light angle",
		Long: `Print a :root block with every shadow, reflection, background and border
value for one light angle, tinted with the configured brand.`,
		Example: `  lumen css --angle 45
  lumen css --brand sentinel --sat 60 > lighting.css
  lumen css --angle 45 --compare 135`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("angle") {
				opts.angle = app.Config.Engine.InitialAngle
			}

			brand := app.Brand()
			if opts.brand != "" {
				b, err := theme.Lookup(opts.brand)
				if err != nil {
					return lumenerrors.NewCommandError("css", "resolving brand", err,
						"use one of the listed brand names")
				}
				brand = b
			}
			brand = brand.WithTint(opts.hue, opts.saturation)

			app.Logger.WithFields(map[string]any{
				"angle": opts.angle,
				"brand": brand.Name,
			}).Debug("rendering css variables")

			css := renderCSS(opts.angle, brand)
			if cmd.Flags().Changed("compare") {
				base := renderCSS(opts.compare, brand)
				css = diff.Unified(base, css, angleLabel(opts.compare), angleLabel(opts.angle))
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), css)
			return err
		},
	}

	cmd.Flags().Float64VarP(&opts.angle, "angle", "a", 0, "Light angle in degrees (default: engine.initial_angle)")
	cmd.Flags().StringVarP(&opts.brand, "brand", "b", "", "Brand preset to tint with (default: theme.brand)")
	cmd.Flags().Float64Var(&opts.hue, "hue", 0, "Override the brand hue (0-360)")
	cmd.Flags().Float64Var(&opts.saturation, "sat", 0, "Override the brand saturation (0-100)")
	cmd.Flags().Float64Var(&opts.compare, "compare", 0, "Print a diff against the block for this angle instead")

	return cmd
}

func renderCSS(angle float64, brand theme.Brand) string {
	return stylevars.Render(lighting.ShadowsAt(angle).Variables(brand.Hue, brand.Saturation))
}

func angleLabel(angle float64) string {
	return "light-angle " + lighting.FormatAngle(angle)
}
