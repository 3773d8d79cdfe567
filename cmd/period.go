package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/offcalc/cmd/floater"
)

func (a *app) periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Uncoupled and undamped natural period in heave",
		Long: `Computes T = 2π·√((m + A33)/(ρ·g·Awp)) with masses in tonnes,
ρ = 1.025 t/m³ and g = 9.81 m/s².

Cylinder and barge estimate added mass from their dimensions (Lamb and a
Lewis fit respectively) unless --added-mass is given.`,
	}
	cmd.AddCommand(a.periodCylinderCmd())
	cmd.AddCommand(a.periodBargeCmd())
	cmd.AddCommand(a.periodExplicitCmd())
	cmd.AddCommand(a.periodEstimateCmd())
	return cmd
}

func (a *app) periodCylinderCmd() *cobra.Command {
	var mass, diameter, addedMass float64

	cmd := &cobra.Command{
		Use:   "cylinder",
		Short: "Heave period of a vertical circular cylinder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("cylinder", "mass", mass, "diameter", diameter)

			var (
				c   floater.Cylinder
				err error
			)
			if cmd.Flags().Changed("added-mass") {
				c, err = floater.NewCylinderWithAddedMass(mass, diameter, addedMass)
			} else {
				c, err = floater.NewCylinder(mass, diameter)
			}
			if err != nil {
				return err
			}
			return reportPeriod(cmd, c)
		},
	}
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass of the cylinder (t)")
	cmd.Flags().Float64Var(&diameter, "diameter", 0, "waterline diameter (m)")
	cmd.Flags().Float64Var(&addedMass, "added-mass", 0, "heave added mass (t); estimated when omitted")
	_ = cmd.MarkFlagRequired("mass")
	_ = cmd.MarkFlagRequired("diameter")
	return cmd
}

func (a *app) periodBargeCmd() *cobra.Command {
	var mass, width, draft, length, addedMass float64

	cmd := &cobra.Command{
		Use:   "barge",
		Short: "Heave period of a rectangular barge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("barge", "mass", mass, "width", width, "draft", draft, "length", length)

			var (
				b   floater.Barge
				err error
			)
			if cmd.Flags().Changed("added-mass") {
				b, err = floater.NewBargeWithAddedMass(mass, width, draft, length, addedMass)
			} else {
				b, err = floater.NewBarge(mass, width, draft, length)
			}
			if err != nil {
				return err
			}
			return reportPeriod(cmd, b)
		},
	}
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass of the barge (t)")
	cmd.Flags().Float64Var(&width, "width", 0, "beam (m)")
	cmd.Flags().Float64Var(&draft, "draft", 0, "draft (m)")
	cmd.Flags().Float64Var(&length, "length", 0, "length (m)")
	cmd.Flags().Float64Var(&addedMass, "added-mass", 0, "heave added mass (t); estimated when omitted")
	for _, f := range []string{"mass", "width", "draft", "length"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) periodExplicitCmd() *cobra.Command {
	var mass, area, addedMass float64

	cmd := &cobra.Command{
		Use:   "explicit",
		Short: "Heave period from mass, added mass and waterplane area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := floater.NewBody(mass, addedMass, area)
			if err != nil {
				return err
			}
			return reportPeriod(cmd, b)
		},
	}
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass (t)")
	cmd.Flags().Float64Var(&area, "waterplane-area", 0, "waterplane area (m²)")
	cmd.Flags().Float64Var(&addedMass, "added-mass", 0, "heave added mass (t)")
	for _, f := range []string{"mass", "waterplane-area", "added-mass"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) periodEstimateCmd() *cobra.Command {
	var (
		mass float64
		dims floater.Dimensions
	)

	cmd := &cobra.Command{
		Use:   "estimate GEOMETRY",
		Short: "Heave period of a cylinder or barge named by geometry",
		Long: `Estimates added mass and waterplane area from the characteristic lengths
of GEOMETRY (cylinder or barge). A cylinder takes --diameter only; a barge
takes --width, --draft and --length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := floater.ParseGeometry(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("estimate", "geometry", g, "mass", mass, "dimensions", dims)

			f, err := floater.Estimate(g, mass, dims)
			if err != nil {
				return err
			}
			return reportPeriod(cmd, f)
		},
	}
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass (t)")
	cmd.Flags().Float64Var(&dims.Diameter, "diameter", 0, "cylinder diameter (m)")
	cmd.Flags().Float64Var(&dims.Width, "width", 0, "barge beam (m)")
	cmd.Flags().Float64Var(&dims.Draft, "draft", 0, "barge draft (m)")
	cmd.Flags().Float64Var(&dims.Length, "length", 0, "barge length (m)")
	_ = cmd.MarkFlagRequired("mass")
	return cmd
}

func reportPeriod(cmd *cobra.Command, f floater.Floater) error {
	t, err := floater.NaturalPeriodHeaveFromGeometry(f)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("natural period in heave", "geometry", f.Geometry(), "period_s", t)
	fmt.Fprintln(cmd.OutOrStdout(), floater.View(f))
	return nil
}
